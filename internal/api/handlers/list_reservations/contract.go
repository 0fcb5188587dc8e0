package list_reservations

import (
	"context"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

type ReservationsService interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
