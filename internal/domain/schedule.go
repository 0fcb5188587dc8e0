package domain

import "time"

// Opening hours: the restaurant opens at 17:00 every day and closes
// at 23:00 Monday-Saturday and at 21:00 on Sunday.
const (
	OpeningHour        = 17
	ClosingHourWeekday = 23
	ClosingHourSunday  = 21
)

const (
	DefaultDurationMinutes = 90
	SlotStepMinutes        = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ClosingHour returns the closing hour for the given weekday
func ClosingHour(weekday time.Weekday) int {
	if weekday == time.Sunday {
		return ClosingHourSunday
	}
	return ClosingHourWeekday
}

// OpeningAt returns the opening instant for the date of t
func OpeningAt(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), OpeningHour, 0, 0, 0, t.Location())
}

// ClosingAt returns the closing instant for the date of t
func ClosingAt(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), ClosingHour(t.Weekday()), 0, 0, 0, t.Location())
}

// WithinOperatingHours reports whether a reservation starting at start and
// lasting durationMinutes fits the opening hours of that day.
//
// Политика строгая: бронь должна начаться не раньше открытия, строго раньше
// закрытия, и закончиться не позже закрытия. Конец сравнивается как момент
// времени, а не как час: бронь 22:30+90 минут заканчивается в 00:00 и
// отклоняется.
func WithinOperatingHours(start time.Time, durationMinutes int) bool {
	if start.Hour() < OpeningHour {
		return false
	}
	if start.Hour() >= ClosingHour(start.Weekday()) {
		return false
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return !end.After(ClosingAt(start))
}
