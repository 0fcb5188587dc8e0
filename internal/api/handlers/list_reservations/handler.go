package list_reservations

import (
	"net/http"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/domain"
)

const (
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgReservationsList = "Reservations for the date"
)

// ReservationItem HTTP model of a reservation in the day schedule
type ReservationItem struct {
	ID              int64  `json:"id"`
	CustomerID      int64  `json:"customer_id"`
	TableNumber     int    `json:"table_number"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	GuestCount      int    `json:"guest_count"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")

	date, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid date %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reservations - Failed: date=%s, error=%v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]*ReservationItem, len(list))
	for i, res := range list {
		items[i] = &ReservationItem{
			ID:              res.ID,
			CustomerID:      res.CustomerID,
			TableNumber:     res.TableNumber,
			Date:            res.ReservationDate.Format(domain.DateFormat),
			Time:            res.ReservationDate.Format(domain.TimeFormat),
			DurationMinutes: res.DurationMinutes,
			GuestCount:      res.GuestCount,
			Status:          string(res.Status),
			CreatedAt:       res.CreatedAt.Format(time.RFC3339),
		}
	}

	handlers.RespondSuccess(w, http.StatusOK, msgReservationsList, items)
}
