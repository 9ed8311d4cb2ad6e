package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"buddystream/internal/model"
	"buddystream/internal/password"
	"buddystream/internal/repository"
)

// AuthService composes the credential store and the password hasher into
// the login and registration flows.
type AuthService struct {
	users  repository.UserRepository
	hasher *password.Hasher
	log    *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, hasher *password.Hasher, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		log:    log,
	}
}

// Authenticate verifies the submitted credentials. Unknown username, wrong
// password and an unreadable stored hash all return ErrInvalidCredentials;
// the sub-cases are only distinguished on the internal log. Store failures
// other than "no such user" surface as wrapped errors.
func (s *AuthService) Authenticate(ctx context.Context, username, plaintext string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.log.Infow("login failed: unknown username", "username", username)
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !password.IsEncoded(user.PasswordHash) {
		// Stored data not produced by the hasher, e.g. a plaintext row
		// migrated from legacy data.
		s.log.Warnw("stored password hash is not argon2id encoded", "user_id", user.ID)
		return nil, model.ErrInvalidCredentials
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		s.log.Infow("login failed: wrong password", "user_id", user.ID)
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// Register creates a new user account. The plaintext password is hashed
// before it ever reaches the store.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("password is required")
	}

	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, model.ErrUsernameExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrUsernameExists) {
			// The pre-check raced with a concurrent registration; report it
			// the same way as a taken username found up front.
			return nil, model.ErrUsernameExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}
