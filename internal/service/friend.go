package service

import (
	"context"
	"errors"
	"fmt"

	"buddystream/internal/model"
	"buddystream/internal/repository"
)

// FriendService handles a user's friends list.
type FriendService struct {
	friends repository.FriendRepository
	users   repository.UserRepository
}

func NewFriendService(friends repository.FriendRepository, users repository.UserRepository) *FriendService {
	return &FriendService{
		friends: friends,
		users:   users,
	}
}

// Add creates a friendship from the user to the named account. Befriending
// yourself, an unknown username, or an existing friend is rejected.
func (s *FriendService) Add(ctx context.Context, userID int64, friendUsername string) error {
	friend, err := s.users.GetByUsername(ctx, friendUsername)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.ErrUserNotFound
		}
		return fmt.Errorf("lookup friend: %w", err)
	}

	if friend.ID == userID {
		return model.ErrCannotFriendSelf
	}

	exists, err := s.friends.Exists(ctx, userID, friend.ID)
	if err != nil {
		return fmt.Errorf("check friendship: %w", err)
	}
	if exists {
		return model.ErrAlreadyFriends
	}

	created, err := s.friends.Create(ctx, userID, friend.ID)
	if err != nil {
		return fmt.Errorf("create friendship: %w", err)
	}
	if !created {
		return model.ErrAlreadyFriends
	}

	return nil
}

// List returns the user's friends.
func (s *FriendService) List(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	friends, err := s.friends.GetForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load friends: %w", err)
	}
	return friends, nil
}
