package service

import (
	"context"
	"fmt"

	"buddystream/internal/model"
	"buddystream/internal/repository"
)

// ProfileService handles profile reads and owner edits.
type ProfileService struct {
	users repository.UserRepository
}

func NewProfileService(users repository.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// Get returns the profile of the named user.
func (s *ProfileService) Get(ctx context.Context, username string) (*model.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// Update overwrites the owner-mutable profile fields and returns the
// updated profile. Username, name and credentials are not touched.
func (s *ProfileService) Update(ctx context.Context, username string, req *model.UpdateProfileRequest) (*model.User, error) {
	if err := s.users.UpdateProfile(ctx, username, req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	return user, nil
}
