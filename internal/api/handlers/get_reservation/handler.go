package get_reservation

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/domain"
	reservationsService "github.com/m04kA/RST-ReservationService/internal/service/reservations"
)

const (
	msgInvalidID           = "invalid reservation id"
	msgReservationNotFound = "reservation not found"
	msgReservationFound    = "Reservation found"
)

// ReservationResponse HTTP model of a reservation
type ReservationResponse struct {
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

// FromDomain конвертирует доменную бронь в HTTP модель
func FromDomain(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
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

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	res, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservationsService.ErrReservationNotFound) {
			h.logger.Warn("GET /reservations/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("GET /reservations/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, msgReservationFound, FromDomain(res))
}
