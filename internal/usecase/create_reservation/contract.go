package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetActiveByCustomerAndStart(ctx context.Context, customerID int64, start time.Time) (*domain.Reservation, error)
	UpdateGuestCount(ctx context.Context, id int64, guestCount int) error
}

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	DefaultDuration() int
	WithinOperatingHours(start time.Time, durationMinutes int) bool
	FindAvailableTable(ctx context.Context, start time.Time, durationMinutes, guestCount int, excludeTables ...int) (int, bool, error)
	TableFitsParty(ctx context.Context, tableNumber, guestCount int) (bool, error)
	AvailableTimeSlots(ctx context.Context, date time.Time, guestCount, durationMinutes int) ([]time.Time, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// OutcomeRecorder счетчик исходов попыток бронирования (метрики)
type OutcomeRecorder interface {
	IncOutcome(outcome string)
}

// NoopRecorder заглушка, когда метрики выключены
type NoopRecorder struct{}

// IncOutcome ничего не делает
func (NoopRecorder) IncOutcome(string) {}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
