package repository

import (
	"context"
	"time"

	"buddystream/internal/model"
)

// UserRepository is the credential store plus profile persistence. Username
// lookups are exact-match and case-sensitive; username is unique.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateProfile(ctx context.Context, username string, req *model.UpdateProfileRequest) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	// FindByTokenHash returns only live sessions; expired rows are treated
	// as absent.
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteForUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type PostRepository interface {
	Create(ctx context.Context, userID int64, content string) (*model.Post, error)
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	// GetStreamForUser returns the user's own posts plus their friends'
	// posts (both directions of the friendship), newest first.
	GetStreamForUser(ctx context.Context, userID int64) ([]model.Post, error)
	Exists(ctx context.Context, postID int64) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, postID, userID int64, content string) (*model.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]model.Comment, error)
}

type FriendRepository interface {
	// Create inserts the friendship edge; returns false if it already existed.
	Create(ctx context.Context, userID, friendID int64) (bool, error)
	// Exists checks the edge in either direction.
	Exists(ctx context.Context, userID, friendID int64) (bool, error)
	GetForUser(ctx context.Context, userID int64) ([]model.UserSummary, error)
}
