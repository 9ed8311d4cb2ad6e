package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"buddystream/internal/model"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// mockUserRepository implements repository.UserRepository with
// overridable function fields. createCalls records every Create so tests
// can assert the store was not touched.
type mockUserRepository struct {
	createFunc           func(ctx context.Context, user *model.User) error
	getByIDFunc          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFunc    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	updateProfileFunc    func(ctx context.Context, username string, req *model.UpdateProfileRequest) error

	createCalls []*model.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	user.ID = int64(len(m.createCalls))
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFunc != nil {
		return m.existsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, username string, req *model.UpdateProfileRequest) error {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, username, req)
	}
	return nil
}

// mockSessionRepository is an in-memory repository.SessionRepository keyed
// by token hash.
type mockSessionRepository struct {
	sessions map[string]*model.Session

	createErr error
	findErr   error
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: make(map[string]*model.Session)}
}

func (m *mockSessionRepository) Create(ctx context.Context, session *model.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.sessions[session.TokenHash] = session
	return nil
}

func (m *mockSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	session, ok := m.sessions[tokenHash]
	if !ok || session.IsExpired() {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (m *mockSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	delete(m.sessions, tokenHash)
	return nil
}

func (m *mockSessionRepository) DeleteForUser(ctx context.Context, userID int64) error {
	for hash, session := range m.sessions {
		if session.UserID == userID {
			delete(m.sessions, hash)
		}
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for hash, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			delete(m.sessions, hash)
			n++
		}
	}
	return n, nil
}

// mockFriendRepository implements repository.FriendRepository.
type mockFriendRepository struct {
	createFunc     func(ctx context.Context, userID, friendID int64) (bool, error)
	existsFunc     func(ctx context.Context, userID, friendID int64) (bool, error)
	getForUserFunc func(ctx context.Context, userID int64) ([]model.UserSummary, error)

	createCalls int
}

func (m *mockFriendRepository) Create(ctx context.Context, userID, friendID int64) (bool, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, friendID)
	}
	return true, nil
}

func (m *mockFriendRepository) Exists(ctx context.Context, userID, friendID int64) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, userID, friendID)
	}
	return false, nil
}

func (m *mockFriendRepository) GetForUser(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	if m.getForUserFunc != nil {
		return m.getForUserFunc(ctx, userID)
	}
	return nil, nil
}

// mockPostRepository implements repository.PostRepository.
type mockPostRepository struct {
	createFunc           func(ctx context.Context, userID int64, content string) (*model.Post, error)
	getByIDFunc          func(ctx context.Context, postID int64) (*model.Post, error)
	getStreamForUserFunc func(ctx context.Context, userID int64) ([]model.Post, error)
	existsFunc           func(ctx context.Context, postID int64) (bool, error)

	createCalls int
}

func (m *mockPostRepository) Create(ctx context.Context, userID int64, content string) (*model.Post, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, content)
	}
	return &model.Post{ID: 1, UserID: userID, Content: content}, nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) GetStreamForUser(ctx context.Context, userID int64) ([]model.Post, error) {
	if m.getStreamForUserFunc != nil {
		return m.getStreamForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPostRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, postID)
	}
	return false, nil
}

// mockCommentRepository implements repository.CommentRepository.
type mockCommentRepository struct {
	createFunc      func(ctx context.Context, postID, userID int64, content string) (*model.Comment, error)
	getByPostIDFunc func(ctx context.Context, postID int64) ([]model.Comment, error)

	createCalls int
}

func (m *mockCommentRepository) Create(ctx context.Context, postID, userID int64, content string) (*model.Comment, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, postID, userID, content)
	}
	return &model.Comment{ID: 1, PostID: postID, UserID: userID, Content: content}, nil
}

func (m *mockCommentRepository) GetByPostID(ctx context.Context, postID int64) ([]model.Comment, error) {
	if m.getByPostIDFunc != nil {
		return m.getByPostIDFunc(ctx, postID)
	}
	return nil, nil
}
