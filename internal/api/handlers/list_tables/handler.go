package list_tables

import (
	"context"
	"net/http"

	"github.com/m04kA/RST-ReservationService/internal/api/handlers"
	"github.com/m04kA/RST-ReservationService/internal/domain"
)

const msgTables = "Active tables"

type TableRepository interface {
	ListActive(ctx context.Context) ([]*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TableItem HTTP model of a table
type TableItem struct {
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

// Handle GET /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.tables.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /tables - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]*TableItem, len(list))
	for i, t := range list {
		items[i] = &TableItem{
			ID:          t.ID,
			TableNumber: t.TableNumber,
			Capacity:    t.Capacity,
			IsActive:    t.IsActive,
		}
	}

	handlers.RespondSuccess(w, http.StatusOK, msgTables, items)
}
