package availability

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/table"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type captureLogger struct {
	infos []string
	warns []string
}

func (l *captureLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *captureLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func (l *captureLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) ListActiveOverlapping(_ context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.IsActive() && r.OverlapsWindow(start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

// ListActive отдает столы в порядке возрастания вместимости, как SQL репозиторий
func (f *fakeTableRepo) ListActive(context.Context) ([]*domain.Table, error) {
	out := make([]*domain.Table, 0, len(f.tables))
	out = append(out, f.tables...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && (out[j-1].Capacity > out[j].Capacity ||
			(out[j-1].Capacity == out[j].Capacity && out[j-1].TableNumber > out[j].TableNumber)); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out, nil
}

func (f *fakeTableRepo) GetByNumber(_ context.Context, n int) (*domain.Table, error) {
	for _, t := range f.tables {
		if t.TableNumber == n {
			return t, nil
		}
	}
	return nil, tableRepo.ErrTableNotFound
}

func tuesday(hour, min int) time.Time {
	return time.Date(2025, 10, 21, hour, min, 0, 0, time.Local)
}

func sunday(hour, min int) time.Time {
	return time.Date(2025, 10, 19, hour, min, 0, 0, time.Local)
}

func threeTables() *fakeTableRepo {
	return &fakeTableRepo{tables: []*domain.Table{
		{ID: 1, TableNumber: 1, Capacity: 2, IsActive: true},
		{ID: 2, TableNumber: 2, Capacity: 4, IsActive: true},
		{ID: 3, TableNumber: 3, Capacity: 6, IsActive: true},
	}}
}

func capacityConfig() Config {
	return Config{
		Policy:                 PolicyCapacity,
		SlotStepMinutes:        domain.SlotStepMinutes,
		DefaultDurationMinutes: domain.DefaultDurationMinutes,
	}
}

func uniformConfig(poolSize int) Config {
	return Config{
		Policy:                 PolicyUniform,
		PoolSize:               poolSize,
		SlotStepMinutes:        domain.SlotStepMinutes,
		DefaultDurationMinutes: domain.DefaultDurationMinutes,
	}
}

func TestDefaultDuration(t *testing.T) {
	cfg := capacityConfig()
	cfg.DefaultDurationMinutes = 120
	svc := NewService(&fakeReservationRepo{}, threeTables(), cfg, nopLogger{})

	assert.Equal(t, 120, svc.DefaultDuration())
}

func TestFindAvailableTable_CapacityFirstFit(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, threeTables(), capacityConfig(), nopLogger{})

	table, found, err := svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 4)
	require.NoError(t, err)
	require.True(t, found)
	// Наименьший достаточный стол
	assert.Equal(t, 2, table)
}

func TestFindAvailableTable_SkipsOccupied(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{TableNumber: 2, ReservationDate: tuesday(18, 30), DurationMinutes: 90, Status: domain.StatusConfirmed},
	}}
	svc := NewService(reservations, threeTables(), capacityConfig(), nopLogger{})

	table, found, err := svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 4)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, table)
}

func TestFindAvailableTable_BoundaryDoesNotConflict(t *testing.T) {
	// Бронь заканчивается ровно в момент начала запрошенной
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{TableNumber: 2, ReservationDate: tuesday(17, 30), DurationMinutes: 90, Status: domain.StatusConfirmed},
	}}
	svc := NewService(reservations, threeTables(), capacityConfig(), nopLogger{})

	table, found, err := svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 4)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, table)
}

func TestFindAvailableTable_FullyBooked(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{TableNumber: 2, ReservationDate: tuesday(19, 0), DurationMinutes: 90, Status: domain.StatusConfirmed},
		{TableNumber: 3, ReservationDate: tuesday(19, 0), DurationMinutes: 90, Status: domain.StatusSeated},
	}}
	svc := NewService(reservations, threeTables(), capacityConfig(), nopLogger{})

	_, found, err := svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 4)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindAvailableTable_CancelledDoesNotBlock(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{TableNumber: 2, ReservationDate: tuesday(19, 0), DurationMinutes: 90, Status: domain.StatusCancelled},
	}}
	svc := NewService(reservations, threeTables(), capacityConfig(), nopLogger{})

	table, found, err := svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 4)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, table)
}

func TestFindAvailableTable_ExcludeTables(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, threeTables(), capacityConfig(), nopLogger{})

	table, found, err := svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 4, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, table)
}

func TestFindAvailableTable_LogsDecision(t *testing.T) {
	log := &captureLogger{}
	svc := NewService(&fakeReservationRepo{}, threeTables(), capacityConfig(), log)

	_, found, err := svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 4)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "table 2")

	// Компания не помещается ни за один стол
	_, found, err = svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 20)
	require.NoError(t, err)
	require.False(t, found)
	require.Len(t, log.warns, 1)
	assert.True(t, strings.Contains(log.warns[0], "no free table"))
}

func TestFindAvailableTable_Uniform(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{TableNumber: 1, ReservationDate: tuesday(19, 0), DurationMinutes: 90, Status: domain.StatusConfirmed},
		{TableNumber: 3, ReservationDate: tuesday(19, 0), DurationMinutes: 90, Status: domain.StatusConfirmed},
	}}
	svc := NewService(reservations, nil, uniformConfig(3), nopLogger{})

	// Размер компании для uniform политики не важен
	table, found, err := svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 10)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, table)
}

func TestFindAvailableTable_UniformPoolExhausted(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{TableNumber: 1, ReservationDate: tuesday(19, 0), DurationMinutes: 90, Status: domain.StatusConfirmed},
		{TableNumber: 2, ReservationDate: tuesday(19, 0), DurationMinutes: 90, Status: domain.StatusConfirmed},
	}}
	svc := NewService(reservations, nil, uniformConfig(2), nopLogger{})

	_, found, err := svc.FindAvailableTable(context.Background(), tuesday(19, 0), 90, 2)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTableFitsParty(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, threeTables(), capacityConfig(), nopLogger{})

	fits, err := svc.TableFitsParty(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.True(t, fits)

	fits, err = svc.TableFitsParty(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.False(t, fits)

	// Uniform политика вместимость не проверяет
	uniform := NewService(&fakeReservationRepo{}, nil, uniformConfig(30), nopLogger{})
	fits, err = uniform.TableFitsParty(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.True(t, fits)
}

func TestAvailableTimeSlots_EmptyDay(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, threeTables(), capacityConfig(), nopLogger{})

	slots, err := svc.AvailableTimeSlots(context.Background(), tuesday(0, 0), 2, 90)
	require.NoError(t, err)

	// Вторник: 17:00 .. 21:30 с шагом 30 минут
	require.Len(t, slots, 10)
	assert.Equal(t, tuesday(17, 0), slots[0])
	assert.Equal(t, tuesday(21, 30), slots[len(slots)-1])

	// Хронологический порядок
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].After(slots[i-1]))
	}
}

func TestAvailableTimeSlots_CustomStep(t *testing.T) {
	cfg := capacityConfig()
	cfg.SlotStepMinutes = 60
	svc := NewService(&fakeReservationRepo{}, threeTables(), cfg, nopLogger{})

	slots, err := svc.AvailableTimeSlots(context.Background(), tuesday(0, 0), 2, 90)
	require.NoError(t, err)

	// Часовой шаг: 17:00, 18:00, 19:00, 20:00, 21:00
	require.Len(t, slots, 5)
	assert.Equal(t, tuesday(17, 0), slots[0])
	assert.Equal(t, tuesday(21, 0), slots[len(slots)-1])
}

func TestAvailableTimeSlots_SundayShorterDay(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, threeTables(), capacityConfig(), nopLogger{})

	slots, err := svc.AvailableTimeSlots(context.Background(), sunday(0, 0), 2, 90)
	require.NoError(t, err)

	// Воскресенье закрывается в 21:00: 17:00 .. 19:30
	require.Len(t, slots, 6)
	assert.Equal(t, sunday(17, 0), slots[0])
	assert.Equal(t, sunday(19, 30), slots[len(slots)-1])
}

func TestAvailableTimeSlots_DropsBookedWindows(t *testing.T) {
	// Единственный стол занят 18:00-19:30
	tables := &fakeTableRepo{tables: []*domain.Table{
		{ID: 1, TableNumber: 1, Capacity: 4, IsActive: true},
	}}
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{TableNumber: 1, ReservationDate: tuesday(18, 0), DurationMinutes: 90, Status: domain.StatusConfirmed},
	}}
	svc := NewService(reservations, tables, capacityConfig(), nopLogger{})

	slots, err := svc.AvailableTimeSlots(context.Background(), tuesday(0, 0), 2, 90)
	require.NoError(t, err)

	// Остаются только слоты, не пересекающиеся с занятым окном
	require.Len(t, slots, 5)
	assert.Equal(t, tuesday(19, 30), slots[0])
	assert.Equal(t, tuesday(21, 30), slots[len(slots)-1])
}

func TestAvailableTimeSlots_UniformIgnoresTablesOutsidePool(t *testing.T) {
	// Бронь на столе вне пула 1..2 не занимает слот
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{TableNumber: 9, ReservationDate: tuesday(18, 0), DurationMinutes: 90, Status: domain.StatusConfirmed},
	}}
	svc := NewService(reservations, nil, uniformConfig(2), nopLogger{})

	slots, err := svc.AvailableTimeSlots(context.Background(), tuesday(0, 0), 2, 90)
	require.NoError(t, err)
	assert.Len(t, slots, 10)
}

func TestAvailableTimeSlots_UniformPoolFull(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{TableNumber: 1, ReservationDate: tuesday(18, 0), DurationMinutes: 90, Status: domain.StatusConfirmed},
		{TableNumber: 2, ReservationDate: tuesday(18, 0), DurationMinutes: 90, Status: domain.StatusConfirmed},
	}}
	svc := NewService(reservations, nil, uniformConfig(2), nopLogger{})

	slots, err := svc.AvailableTimeSlots(context.Background(), tuesday(0, 0), 2, 90)
	require.NoError(t, err)

	// Выпадают все слоты, чье окно пересекается с занятым 18:00-19:30
	require.Len(t, slots, 5)
	assert.Equal(t, tuesday(19, 30), slots[0])
	assert.Equal(t, tuesday(21, 30), slots[len(slots)-1])
}

func TestAvailableTimeSlots_NoTableFitsParty(t *testing.T) {
	tables := &fakeTableRepo{tables: []*domain.Table{
		{ID: 1, TableNumber: 1, Capacity: 2, IsActive: true},
	}}
	svc := NewService(&fakeReservationRepo{}, tables, capacityConfig(), nopLogger{})

	slots, err := svc.AvailableTimeSlots(context.Background(), tuesday(0, 0), 6, 90)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
