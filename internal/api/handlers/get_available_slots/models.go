package get_available_slots

import (
	"github.com/m04kA/RST-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/RST-ReservationService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date            string   `json:"date"`
	GuestCount      int      `json:"guest_count"`
	DurationMinutes int      `json:"duration_minutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.Format(domain.TimeFormat)
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		GuestCount:      resp.GuestCount,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
