package domain

import "time"

// Customer represents a restaurant guest identified by a unique email
type Customer struct {
	ID               int64
	Name             string
	Email            string
	Phone            *string
	NewsletterSignup bool
	CreatedAt        time.Time
}

// Table represents a bookable table in the dining room
type Table struct {
	ID          int64
	TableNumber int
	Capacity    int
	IsActive    bool
}

// Fits returns true if the table can seat the given party
func (t *Table) Fits(guestCount int) bool {
	return t.IsActive && t.Capacity >= guestCount
}

// NewsletterSubscriber represents a newsletter sign-up
type NewsletterSubscriber struct {
	ID           int64
	Email        string
	SubscribedAt time.Time
	IsActive     bool
}
