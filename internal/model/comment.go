package model

import (
	"errors"
	"time"
)

// Comment represents a comment on a post.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"-"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined field (not in comments table)
	Author *UserSummary `json:"author,omitempty"`
}

// CreateCommentRequest is the request body for creating a comment.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CommentsResponse is returned for the comments page of a post.
type CommentsResponse struct {
	Post     *Post     `json:"post"`
	Comments []Comment `json:"comments"`
}

const MaxCommentLength = 2000

var (
	ErrCommentContentRequired = errors.New("comment content is required")
	ErrCommentContentTooLong  = errors.New("comment content too long")
)
