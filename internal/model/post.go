package model

import (
	"errors"
	"time"
)

// Post represents an entry in a user's stream.
type Post struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	Content      string    `db:"content" json:"content"`
	CommentCount int       `db:"comment_count" json:"comment_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`

	// Joined field (not in posts table)
	Author *UserSummary `json:"author,omitempty"`
}

// CreatePostRequest is the request body for posting to a stream.
type CreatePostRequest struct {
	Content string `json:"content"`
}

// StreamResponse wraps a user's stream: their own posts plus their
// friends' posts, newest first.
type StreamResponse struct {
	Posts []Post `json:"posts"`
}

const MaxPostContentLength = 4000

var (
	ErrPostNotFound        = errors.New("post not found")
	ErrPostContentRequired = errors.New("post content is required")
	ErrPostContentTooLong  = errors.New("post content too long")
)
