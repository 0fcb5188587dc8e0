package unsubscribe_newsletter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	newsletterService "github.com/m04kA/RST-ReservationService/internal/service/newsletter"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmail       = "a valid email is required"
	msgNotSubscribed      = "email is not subscribed"
	msgUnsubscribed       = "Unsubscribed from the newsletter"
)

type NewsletterService interface {
	Unsubscribe(ctx context.Context, email string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UnsubscribeRequest HTTP request model
type UnsubscribeRequest struct {
	Email string `json:"email"`
}

type Handler struct {
	service NewsletterService
	logger  Logger
}

func NewHandler(service NewsletterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/newsletter/unsubscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UnsubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), email); err != nil {
		if errors.Is(err, newsletterService.ErrSubscriberNotFound) {
			handlers.RespondNotFound(w, msgNotSubscribed)
			return
		}
		h.logger.Error("POST /newsletter/unsubscribe - Failed: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, msgUnsubscribed, nil)
}
