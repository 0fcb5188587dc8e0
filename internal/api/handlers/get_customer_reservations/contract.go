package get_customer_reservations

import (
	"context"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

type ReservationsService interface {
	ListByCustomerEmail(ctx context.Context, email string) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
