package subscribe_newsletter

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/domain"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmail       = "a valid email is required"
	msgSubscribed         = "Subscribed to the newsletter"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SubscribeRequest HTTP request model
type SubscribeRequest struct {
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

// Handle POST /api/v1/newsletter/subscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	if _, err := h.service.Subscribe(r.Context(), email); err != nil {
		h.logger.Error("POST /newsletter/subscribe - Failed: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondSuccess(w, http.StatusCreated, msgSubscribed, nil)
}
