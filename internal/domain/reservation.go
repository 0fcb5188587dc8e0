package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusSeated    ReservationStatus = "seated"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation represents a table booking in the restaurant
type Reservation struct {
	ID              int64
	CustomerID      int64
	TableNumber     int
	ReservationDate time.Time
	DurationMinutes int
	GuestCount      int
	Status          ReservationStatus
	CreatedAt       time.Time
}

// End returns the instant the reservation's time window closes
func (r *Reservation) End() time.Time {
	return r.ReservationDate.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// IsActive returns true if the reservation occupies its table
// (only confirmed and seated reservations block a table)
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed || r.Status == StatusSeated
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed || r.Status == StatusSeated
}

// OverlapsWindow reports whether the reservation's window intersects [start, end).
// Touching boundaries do not count as an overlap.
func (r *Reservation) OverlapsWindow(start, end time.Time) bool {
	return Overlaps(r.ReservationDate, r.End(), start, end)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ActiveStatuses список статусов, при которых бронь занимает стол
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusSeated,
}
