package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"buddystream/internal/model"
)

type friendRepository struct {
	db *sqlx.DB
}

func NewFriendRepository(db *sqlx.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, userID, friendID int64) (bool, error) {
	query := `
		INSERT INTO friends (user_id, friend_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, friend_id) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, userID, friendID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("insert friend: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}

	return rows > 0, nil
}

// Exists checks the friendship edge in either direction.
func (r *friendRepository) Exists(ctx context.Context, userID, friendID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM friends
			WHERE (user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, friendID, friendID, userID)
	if err != nil {
		return false, fmt.Errorf("check friend existence: %w", err)
	}

	return exists, nil
}

// GetForUser lists the user's friends following the edge in both
// directions, same as Exists and the stream query: whoever created the
// friendship, both sides see it.
func (r *friendRepository) GetForUser(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.last_name
		FROM friends f
		JOIN users u ON u.id = CASE WHEN f.user_id = ? THEN f.friend_id ELSE f.user_id END
		WHERE f.user_id = ? OR f.friend_id = ?
		ORDER BY f.created_at DESC
	`

	friends := []model.UserSummary{}
	err := r.db.SelectContext(ctx, &friends, query, userID, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("get friends: %w", err)
	}

	return friends, nil
}
