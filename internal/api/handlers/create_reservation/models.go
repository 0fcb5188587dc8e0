package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	createReservation "github.com/m04kA/RST-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Email            string  `json:"email"`
	Name             string  `json:"name,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Date             string  `json:"date"` // "2025-10-15"
	Time             string  `json:"time"` // "19:00"
	Guests           int     `json:"guests"`
	DurationMinutes  int     `json:"duration_minutes,omitempty"`
	NewsletterSignup bool    `json:"newsletter_signup,omitempty"`
}

// ReservationData HTTP model of a booked reservation
type ReservationData struct {
	ReservationID   int64   `json:"reservation_id"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Phone           *string `json:"phone,omitempty"`
	TableNumber     int     `json:"table_number"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"duration_minutes"`
	GuestCount      int     `json:"guest_count"`
	Status          string  `json:"status"`
}

// NoAvailabilityData альтернативные слоты при отказе
type NoAvailabilityData struct {
	AlternativeSlots []string `json:"alternative_slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	start, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		fmt.Sprintf("%s %s", r.Date, r.Time),
		time.Local,
	)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Email:            r.Email,
		Name:             r.Name,
		Phone:            r.Phone,
		Start:            start,
		GuestCount:       r.Guests,
		DurationMinutes:  r.DurationMinutes,
		NewsletterSignup: r.NewsletterSignup,
	}, nil
}

// outcomeData собирает data-часть ответа для исхода
func outcomeData(outcome *createReservation.Outcome) interface{} {
	if outcome.Reservation != nil {
		res := outcome.Reservation
		return &ReservationData{
			ReservationID:   res.ReservationID,
			Email:           res.Email,
			Name:            res.Name,
			Phone:           res.Phone,
			TableNumber:     res.TableNumber,
			Date:            res.Date.Format(domain.DateFormat),
			Time:            res.Date.Format(domain.TimeFormat),
			DurationMinutes: res.DurationMinutes,
			GuestCount:      res.GuestCount,
			Status:          res.Status,
		}
	}

	if len(outcome.AlternativeSlots) > 0 {
		slots := make([]string, len(outcome.AlternativeSlots))
		for i, s := range outcome.AlternativeSlots {
			slots[i] = s.Format(domain.TimeFormat)
		}
		return &NoAvailabilityData{AlternativeSlots: slots}
	}

	return nil
}
