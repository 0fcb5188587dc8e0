package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/RST-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidGuests   = "guests must be a positive number"
	msgInvalidDuration = "duration_minutes must be a positive number"
	msgSlotsFound      = "Available time slots"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=YYYY-MM-DD&guests=N&duration_minutes=M
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date, err := time.ParseInLocation(domain.DateFormat, q.Get("date"), time.Local)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", q.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	guests, err := strconv.Atoi(q.Get("guests"))
	if err != nil || guests <= 0 {
		h.logger.Warn("GET /available-slots - Invalid guests %q", q.Get("guests"))
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return
	}

	duration := 0
	if raw := q.Get("duration_minutes"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil || duration <= 0 {
			h.logger.Warn("GET /available-slots - Invalid duration %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:            date,
		GuestCount:      guests,
		DurationMinutes: duration,
	})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /available-slots - Failed: date=%s, error=%v", q.Get("date"), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, msgSlotsFound, FromUseCaseResponse(result))
}
