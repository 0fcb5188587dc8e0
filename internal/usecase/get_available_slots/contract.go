package get_available_slots

import (
	"context"
	"time"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	DefaultDuration() int
	AvailableTimeSlots(ctx context.Context, date time.Time, guestCount, durationMinutes int) ([]time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
