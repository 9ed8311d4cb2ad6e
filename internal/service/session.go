package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buddystream/internal/config"
	"buddystream/internal/model"
	"buddystream/internal/repository"
)

// SessionService binds an Identity to a session token after successful
// authentication, resolves the current principal on each request, and
// clears the binding on logout.
type SessionService struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
	config   *config.Config
	log      *zap.SugaredLogger
}

func NewSessionService(sessions repository.SessionRepository, users repository.UserRepository, cfg *config.Config, log *zap.SugaredLogger) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		config:   cfg,
		log:      log,
	}
}

// Establish creates a session binding for the user and returns the raw
// token. A fresh random token is generated on every call, so a login never
// reuses a pre-login token (session fixation resistance). Only the SHA-256
// hash of the token is persisted.
func (s *SessionService) Establish(ctx context.Context, user *model.User, remember bool) (string, error) {
	token := uuid.New().String()

	session := &model.Session{
		TokenHash: hashToken(token),
		UserID:    user.ID,
		Remember:  remember,
		ExpiresAt: time.Now().Add(time.Duration(s.MaxAge(remember)) * time.Second),
		CreatedAt: time.Now(),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Current resolves the identity bound to the token. An empty or unknown
// token, an expired session, or a user row that no longer exists all mean
// "not authenticated": (nil, nil), never an error.
func (s *SessionService) Current(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.FindByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// The referenced user was deleted; the stale binding is not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("load session user: %w", err)
	}

	return &model.Identity{ID: user.ID, Username: user.Username}, nil
}

// Clear removes the binding for the token. Clearing an unknown or empty
// token is a no-op.
func (s *SessionService) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByTokenHash(ctx, hashToken(token))
}

// ClearAll removes every session of the user (log out from all browsers).
func (s *SessionService) ClearAll(ctx context.Context, userID int64) error {
	return s.sessions.DeleteForUser(ctx, userID)
}

// MaxAge returns the session lifetime in seconds for the remember flag.
func (s *SessionService) MaxAge(remember bool) int {
	if remember {
		return s.config.RememberMaxAge
	}
	return s.config.SessionMaxAge
}

// PurgeExpired deletes expired session rows. Run periodically from a
// background janitor.
func (s *SessionService) PurgeExpired(ctx context.Context) {
	n, err := s.sessions.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.log.Errorw("purge expired sessions", "error", err)
		return
	}
	if n > 0 {
		s.log.Infow("purged expired sessions", "count", n)
	}
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
