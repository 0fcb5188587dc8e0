package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/RST-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	outcome, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, createReservation.ErrInvalidInput) {
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /reservations - Failed to create reservation: email=%s, error=%v",
			req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	status := statusForOutcome(outcome)

	if outcome.Success() {
		h.logger.Info("POST /reservations - %s: email=%s, date=%s %s",
			outcome.Code, req.Email, req.Date, req.Time)
		handlers.RespondSuccess(w, status, outcome.Message, outcomeData(outcome))
		return
	}

	h.logger.Warn("POST /reservations - %s: email=%s, date=%s %s",
		outcome.Code, req.Email, req.Date, req.Time)
	handlers.RespondJSON(w, status, handlers.Envelope{
		Message: outcome.Message,
		Success: false,
		Data:    outcomeData(outcome),
	})
}

// statusForOutcome сопоставляет исход бронирования HTTP статусу
func statusForOutcome(outcome *createReservation.Outcome) int {
	switch outcome.Code {
	case createReservation.OutcomeConfirmed:
		return http.StatusCreated
	case createReservation.OutcomeDuplicateUpdated, createReservation.OutcomeDuplicateUnchanged:
		return http.StatusOK
	case createReservation.OutcomeNoAvailability:
		return http.StatusConflict
	default: // out_of_hours, missing_customer_name
		return http.StatusBadRequest
	}
}
