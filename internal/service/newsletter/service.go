package newsletter

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	newsletterRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/newsletter"
)

var (
	// ErrSubscriberNotFound возвращается при отписке неизвестного email
	ErrSubscriberNotFound = errors.New("newsletter.service: subscriber not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("newsletter.service: internal error")
)

// SubscriberRepository интерфейс репозитория подписчиков
type SubscriberRepository interface {
	Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис подписки на рассылку
type Service struct {
	subscribers SubscriberRepository
	logger      Logger
}

// NewService создает новый сервис рассылки
func NewService(subscribers SubscriberRepository, logger Logger) *Service {
	return &Service{
		subscribers: subscribers,
		logger:      logger,
	}
}

// Subscribe подписывает email; повторная подписка идемпотентна
func (s *Service) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	sub, err := s.subscribers.Subscribe(ctx, email)
	if err != nil {
		s.logger.Error("Subscribe: failed for %s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Subscribe: %s subscribed", email)
	return sub, nil
}

// Unsubscribe деактивирует подписку
func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	err := s.subscribers.Unsubscribe(ctx, email)
	if err != nil {
		if errors.Is(err, newsletterRepo.ErrSubscriberNotFound) {
			return ErrSubscriberNotFound
		}
		s.logger.Error("Unsubscribe: failed for %s: %v", email, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Unsubscribe: %s unsubscribed", email)
	return nil
}
