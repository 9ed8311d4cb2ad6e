package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"buddystream/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, userID int64, content string) (*model.Post, error) {
	query := `INSERT INTO posts (user_id, content, created_at) VALUES (?, ?, ?)`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, userID, content, now)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return &model.Post{
		ID:        id,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
	}, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := `
		SELECT p.id, p.user_id, p.content, p.created_at,
		       u.id AS "author.id", u.username AS "author.username",
		       u.first_name AS "author.first_name", u.last_name AS "author.last_name",
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = ?
	`

	var p model.Post
	err := r.db.GetContext(ctx, &p, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post by id: %w", err)
	}

	return &p, nil
}

// GetStreamForUser returns the user's own posts and those of their friends,
// following the friendship edge in both directions, newest first.
func (r *postRepository) GetStreamForUser(ctx context.Context, userID int64) ([]model.Post, error) {
	query := `
		SELECT p.id, p.user_id, p.content, p.created_at,
		       u.id AS "author.id", u.username AS "author.username",
		       u.first_name AS "author.first_name", u.last_name AS "author.last_name",
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = ?
		   OR p.user_id IN (SELECT friend_id FROM friends WHERE user_id = ?)
		   OR p.user_id IN (SELECT user_id FROM friends WHERE friend_id = ?)
		ORDER BY p.created_at DESC, p.id DESC
	`

	posts := []model.Post{}
	err := r.db.SelectContext(ctx, &posts, query, userID, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("get stream: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE id = ?)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, postID)
	if err != nil {
		return false, fmt.Errorf("check post existence: %w", err)
	}

	return exists, nil
}
