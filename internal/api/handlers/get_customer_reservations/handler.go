package get_customer_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/domain"
	reservationsService "github.com/m04kA/RST-ReservationService/internal/service/reservations"
)

const (
	msgCustomerNotFound = "customer not found"
	msgHistoryFound     = "Customer reservations"
)

// ReservationItem HTTP model of a reservation in the customer's history
type ReservationItem struct {
	ID              int64  `json:"id"`
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

// Handle GET /api/v1/customers/{email}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	list, err := h.service.ListByCustomerEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, reservationsService.ErrCustomerNotFound) {
			h.logger.Warn("GET /customers/{email}/reservations - Customer not found: %s", email)
			handlers.RespondNotFound(w, msgCustomerNotFound)
			return
		}
		h.logger.Error("GET /customers/{email}/reservations - Failed: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]*ReservationItem, len(list))
	for i, res := range list {
		items[i] = &ReservationItem{
			ID:              res.ID,
			TableNumber:     res.TableNumber,
			Date:            res.ReservationDate.Format(domain.DateFormat),
			Time:            res.ReservationDate.Format(domain.TimeFormat),
			DurationMinutes: res.DurationMinutes,
			GuestCount:      res.GuestCount,
			Status:          string(res.Status),
			CreatedAt:       res.CreatedAt.Format(time.RFC3339),
		}
	}

	handlers.RespondSuccess(w, http.StatusOK, msgHistoryFound, items)
}
