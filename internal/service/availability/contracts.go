package availability

import (
	"context"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ListActiveOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListActive(ctx context.Context) ([]*domain.Table, error)
	GetByNumber(ctx context.Context, tableNumber int) (*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
