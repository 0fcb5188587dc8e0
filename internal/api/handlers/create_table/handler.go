package create_table

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/table"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTable       = "table_number and capacity must be positive"
	msgDuplicateTable     = "table number already exists"
	msgTableCreated       = "Table created"
)

type TableRepository interface {
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CreateTableRequest HTTP request model
type CreateTableRequest struct {
	TableNumber int `json:"table_number"`
	Capacity    int `json:"capacity"`
}

// TableResponse HTTP response model
type TableResponse struct {
	ID          int64 `json:"id"`
	TableNumber int   `json:"table_number"`
	Capacity    int   `json:"capacity"`
	IsActive    bool  `json:"is_active"`
}

type Handler struct {
	tables TableRepository
	logger Logger
}

func NewHandler(tables TableRepository, logger Logger) *Handler {
	return &Handler{
		tables: tables,
		logger: logger,
	}
}

// Handle POST /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.TableNumber <= 0 || req.Capacity <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTable)
		return
	}

	t, err := h.tables.Create(r.Context(), &domain.Table{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		IsActive:    true,
	})
	if err != nil {
		if errors.Is(err, tableRepo.ErrDuplicateTable) {
			h.logger.Warn("POST /tables - Duplicate table number %d", req.TableNumber)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateTable)
			return
		}
		h.logger.Error("POST /tables - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /tables - Created table %d (capacity %d)", t.TableNumber, t.Capacity)
	handlers.RespondSuccess(w, http.StatusCreated, msgTableCreated, &TableResponse{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		IsActive:    t.IsActive,
	})
}
