package model

import "time"

// GuestSession represents a short-lived anonymous session in the database.
// Rows are created on guest login, never updated, and removed by logout or
// the periodic expiry sweep.
type GuestSession struct {
	ID        int64
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}
