package list_reservations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	list    []*domain.Reservation
	err     error
	gotDate time.Time
}

func (f *fakeService) ListByDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	f.gotDate = date
	return f.list, f.err
}

func doRequest(t *testing.T, svc *fakeService, query string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsDaySchedule(t *testing.T) {
	svc := &fakeService{list: []*domain.Reservation{
		{
			ID:              1,
			CustomerID:      7,
			TableNumber:     3,
			ReservationDate: time.Date(2025, 10, 24, 19, 0, 0, 0, time.Local),
			DurationMinutes: 90,
			GuestCount:      4,
			Status:          domain.StatusConfirmed,
			CreatedAt:       time.Date(2025, 10, 20, 12, 0, 0, 0, time.Local),
		},
	}}

	rec := doRequest(t, svc, "?date=2025-10-24")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2025, 10, 24, 0, 0, 0, 0, time.Local), svc.gotDate)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	items := resp["data"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "2025-10-24", item["date"])
	assert.Equal(t, "19:00", item["time"])
	assert.Equal(t, float64(3), item["table_number"])
	assert.Equal(t, "confirmed", item["status"])
}

func TestHandle_MissingDate(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDate(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "?date=24.10.2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_StorageFailure(t *testing.T) {
	rec := doRequest(t, &fakeService{err: errors.New("connection refused")}, "?date=2025-10-24")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
