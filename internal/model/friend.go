package model

import (
	"errors"
	"time"
)

type Friend struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	FriendID  int64     `db:"friend_id" json:"friend_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AddFriendRequest is the request body for adding a friend by username.
type AddFriendRequest struct {
	Username string `json:"username"`
}

// FriendListResponse wraps a user's friends list.
type FriendListResponse struct {
	Friends []UserSummary `json:"friends"`
}

var (
	ErrAlreadyFriends   = errors.New("already friends with this user")
	ErrCannotFriendSelf = errors.New("cannot be friends with yourself")
)
