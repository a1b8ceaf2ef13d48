package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("guest session not found")

// GuestSessionRepository handles guest session persistence. Rows are
// write-once: created on guest login, removed by Revoke or DeleteExpired.
type GuestSessionRepository struct {
	db *sql.DB
}

// NewGuestSessionRepository creates a new GuestSessionRepository.
func NewGuestSessionRepository(db *sql.DB) *GuestSessionRepository {
	return &GuestSessionRepository{db: db}
}

// Create persists a guest session token with the given expiry.
func (r *GuestSessionRepository) Create(ctx context.Context, token string, expiresAt time.Time) error {
	query := `INSERT INTO guest_sessions (session_token, expires_at) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, token, expiresAt.UTC())
	return err
}

// IsValid reports whether a row exists for the exact token with an expiry in
// the future. An expired row that has not been swept yet counts as absent.
func (r *GuestSessionRepository) IsValid(ctx context.Context, token string) (bool, error) {
	query := `SELECT 1 FROM guest_sessions WHERE session_token = ? AND expires_at > ?`

	var one int
	err := r.db.QueryRowContext(ctx, query, token, time.Now().UTC()).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteExpired removes every session whose expiry is already in the past.
// The cutoff is captured once at call time, so a session created while the
// sweep runs can never be deleted by it. Returns the number of rows removed.
func (r *GuestSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM guest_sessions WHERE expires_at <= ?`

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Revoke removes the session row for an explicit logout. Revoking a token
// that no longer exists is not an error.
func (r *GuestSessionRepository) Revoke(ctx context.Context, token string) error {
	query := `DELETE FROM guest_sessions WHERE session_token = ?`

	_, err := r.db.ExecContext(ctx, query, token)
	return err
}
