package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"buddystream/internal/model"
)

func TestSessionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	expiresAt := time.Now().Add(time.Hour)
	createdAt := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs("abc123", int64(1), true, expiresAt, createdAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	session := &model.Session{
		TokenHash: "abc123",
		UserID:    1,
		Remember:  true,
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
	}
	if err := repo.Create(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_FindByTokenHash(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	expiresAt := time.Now().Add(time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions")).
		WithArgs("abc123", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{
			"token_hash", "user_id", "remember", "expires_at", "created_at",
		}).AddRow("abc123", int64(1), false, expiresAt, time.Now()))

	session, err := repo.FindByTokenHash(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserID != 1 || session.TokenHash != "abc123" {
		t.Errorf("unexpected session: %+v", session)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_FindByTokenHashMiss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	// Unknown and expired hashes both produce an empty result set; the
	// query filters on expires_at.
	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions")).
		WithArgs("unknown", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"token_hash"}))

	_, err := repo.FindByTokenHash(context.Background(), "unknown")
	if !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionRepository_DeleteByTokenHash(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE token_hash = ?")).
		WithArgs("abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByTokenHash(context.Background(), "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE expires_at <= ?")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
