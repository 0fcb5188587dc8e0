package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	customerRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/customer"
	reservationRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/reservation"
)

// Service сервис для чтения и управления жизненным циклом броней.
// Создание брони живет в usecase create_reservation.
type Service struct {
	reservations ReservationRepository
	customers    CustomerRepository
	logger       Logger
}

// NewService создает новый сервис броней
func NewService(reservations ReservationRepository, customers CustomerRepository, logger Logger) *Service {
	return &Service{
		reservations: reservations,
		customers:    customers,
		logger:       logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: failed to get reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return res, nil
}

// Cancel отменяет бронь. Отменить можно только confirmed или seated бронь.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	res, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in status %s cannot be cancelled", id, res.Status)
		return ErrCannotCancel
	}

	if err := s.reservations.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to update status for id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return nil
}

// ListByCustomerEmail получает историю броней клиента по email
func (s *Service) ListByCustomerEmail(ctx context.Context, email string) ([]*domain.Reservation, error) {
	c, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("ListByCustomerEmail: failed to get customer %s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	list, err := s.reservations.ListByCustomer(ctx, c.ID)
	if err != nil {
		s.logger.Error("ListByCustomerEmail: failed to list reservations for customer id=%d: %v", c.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return list, nil
}

// ListByDate получает все брони на календарную дату
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	list, err := s.reservations.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: failed to list reservations for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return list, nil
}
