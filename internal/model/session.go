package model

import (
	"errors"
	"time"
)

// Session is the server-side binding between a browser and a user. Only the
// SHA-256 hash of the session token is stored; the raw token lives in the
// client cookie and is rotated on every login.
type Session struct {
	TokenHash string    `db:"token_hash" json:"-"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Remember  bool      `db:"remember" json:"remember"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// IsExpired returns true if the session has passed its validity window.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// ErrSessionNotFound is returned when no live session matches a token.
var ErrSessionNotFound = errors.New("session not found")
