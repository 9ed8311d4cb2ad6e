package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"buddystream/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, postID, userID int64, content string) (*model.Comment, error) {
	query := `INSERT INTO comments (post_id, user_id, content, created_at) VALUES (?, ?, ?, ?)`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, postID, userID, content, now)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return &model.Comment{
		ID:        id,
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
	}, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]model.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, c.content, c.created_at,
		       u.id AS "author.id", u.username AS "author.username",
		       u.first_name AS "author.first_name", u.last_name AS "author.last_name"
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ?
		ORDER BY c.created_at DESC, c.id DESC
	`

	comments := []model.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	return comments, nil
}
