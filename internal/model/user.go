package model

import (
	"errors"
	"time"
)

// User represents a registered account with its profile attributes.
// Profile fields are mutable only by the owning user; username is
// immutable after creation.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	PasswordHash string    `db:"password_hash" json:"-"` // "-" hides from JSON output
	Education    *string   `db:"education" json:"education"`
	Employment   *string   `db:"employment" json:"employment"`
	Music        *string   `db:"music" json:"music"`
	Movie        *string   `db:"movie" json:"movie"`
	Nationality  *string   `db:"nationality" json:"nationality"`
	Birthday     *string   `db:"birthday" json:"birthday"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Identity is the authenticated principal bound to the current session.
// It is a projection of User sufficient to authorize requests and is never
// persisted outside the session store.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserSummary is a lightweight user representation for lists (friends,
// post authors).
type UserSummary struct {
	ID        int64  `db:"id" json:"id"`
	Username  string `db:"username" json:"username"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

// RegisterRequest represents the data needed to register a new user
type RegisterRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// LoginResponse is returned after a successful login. Redirect is the
// caller's own stream path.
type LoginResponse struct {
	Identity *Identity `json:"identity"`
	Redirect string    `json:"redirect"`
}

// UpdateProfileRequest carries the owner-mutable profile fields. A nil
// field clears the stored value, mirroring an empty form submission.
type UpdateProfileRequest struct {
	Education   *string `json:"education"`
	Employment  *string `json:"employment"`
	Music       *string `json:"music"`
	Movie       *string `json:"movie"`
	Nationality *string `json:"nationality"`
	Birthday    *string `json:"birthday"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect.
	// Unknown username, wrong password and unreadable stored hashes all map
	// to this one error so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
