package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-10-21 is a Tuesday, 2025-10-19 is a Sunday, 2025-10-24 is a Friday
func at(day string, hour, min int) time.Time {
	d, err := time.Parse(DateFormat, day)
	if err != nil {
		panic(err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.Local)
}

func TestWithinOperatingHours(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{"opening boundary is valid", at("2025-10-21", 17, 0), 90, true},
		{"before opening", at("2025-10-21", 16, 59), 90, false},
		{"weekday evening", at("2025-10-24", 19, 0), 90, true},
		{"closing hour exactly is invalid", at("2025-10-21", 23, 0), 90, false},
		{"sunday closes at 21", at("2025-10-19", 21, 30), 90, false},
		{"sunday before closing", at("2025-10-19", 19, 30), 90, true},
		{"ends exactly at closing", at("2025-10-21", 21, 30), 90, true},
		{"duration pushes end past closing", at("2025-10-21", 22, 30), 90, false},
		{"duration pushes end past midnight", at("2025-10-21", 22, 30), 120, false},
		{"sunday duration past closing", at("2025-10-19", 20, 0), 90, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinOperatingHours(tt.start, tt.duration))
		})
	}
}

func TestClosingHour(t *testing.T) {
	assert.Equal(t, 23, ClosingHour(time.Monday))
	assert.Equal(t, 23, ClosingHour(time.Saturday))
	assert.Equal(t, 21, ClosingHour(time.Sunday))
}

func TestOverlaps(t *testing.T) {
	s1 := at("2025-10-21", 18, 0)
	e1 := at("2025-10-21", 19, 30)

	// Настоящее пересечение
	assert.True(t, Overlaps(s1, e1, at("2025-10-21", 19, 0), at("2025-10-21", 20, 30)))
	assert.True(t, Overlaps(s1, e1, at("2025-10-21", 17, 0), at("2025-10-21", 18, 30)))
	assert.True(t, Overlaps(s1, e1, at("2025-10-21", 18, 30), at("2025-10-21", 19, 0)))

	// Граничащие интервалы не пересекаются
	assert.False(t, Overlaps(s1, e1, at("2025-10-21", 19, 30), at("2025-10-21", 21, 0)))
	assert.False(t, Overlaps(s1, e1, at("2025-10-21", 16, 30), at("2025-10-21", 18, 0)))

	// Непересекающиеся
	assert.False(t, Overlaps(s1, e1, at("2025-10-21", 20, 0), at("2025-10-21", 21, 30)))
}

func TestReservationIsActive(t *testing.T) {
	for _, status := range []ReservationStatus{StatusConfirmed, StatusSeated} {
		r := &Reservation{Status: status}
		assert.True(t, r.IsActive(), "status %s", status)
	}
	for _, status := range []ReservationStatus{StatusCancelled, StatusCompleted} {
		r := &Reservation{Status: status}
		assert.False(t, r.IsActive(), "status %s", status)
	}
}

func TestReservationEnd(t *testing.T) {
	r := &Reservation{
		ReservationDate: at("2025-10-21", 19, 0),
		DurationMinutes: 90,
	}
	assert.Equal(t, at("2025-10-21", 20, 30), r.End())
}
