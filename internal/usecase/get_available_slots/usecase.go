package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// UseCase use case получения свободных слотов на дату
type UseCase struct {
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	if req.DurationMinutes == 0 {
		req.DurationMinutes = uc.availability.DefaultDuration()
	}

	slots, err := uc.availability.AvailableTimeSlots(ctx, req.Date, req.GuestCount, req.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to collect slots for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for date=%s, guests=%d, duration=%d",
		len(slots), req.Date.Format(domain.DateFormat), req.GuestCount, req.DurationMinutes)

	return &Response{
		Date:            req.Date,
		GuestCount:      req.GuestCount,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.GuestCount <= 0 {
		return fmt.Errorf("%w: guest count must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	return nil
}
