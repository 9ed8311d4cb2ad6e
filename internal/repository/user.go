package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"buddystream/internal/model"
)

// userRepository implements UserRepository using sqlx over SQLite
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, first_name, last_name, password_hash,
       education, employment, music, movie, nationality, birthday,
       created_at, updated_at`

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, first_name, last_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		u.Username,
		u.FirstName,
		u.LastName,
		u.PasswordHash,
		now,
		now,
	)
	if err != nil {
		if isUniqueViolation(err, "users.username") {
			// Lost a race with a concurrent registration of the same name.
			return model.ErrUsernameExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure on the named column. The driver reports constraint errors by
// message, e.g. "constraint failed: UNIQUE constraint failed:
// users.username (2067)".
func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &u, nil
}

// GetByUsername retrieves a user by their username (exact, case-sensitive)
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &u, nil
}

// ExistsByUsername checks if a username is already taken
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username)
	if err != nil {
		return false, fmt.Errorf("check username existence: %w", err)
	}

	return exists, nil
}

// UpdateProfile overwrites the owner-mutable profile fields.
func (r *userRepository) UpdateProfile(ctx context.Context, username string, req *model.UpdateProfileRequest) error {
	query := `
		UPDATE users
		SET education = ?, employment = ?, music = ?, movie = ?, nationality = ?, birthday = ?, updated_at = ?
		WHERE username = ?
	`

	res, err := r.db.ExecContext(ctx, query,
		req.Education,
		req.Employment,
		req.Music,
		req.Movie,
		req.Nationality,
		req.Birthday,
		time.Now().UTC(),
		username,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrUserNotFound
	}

	return nil
}
