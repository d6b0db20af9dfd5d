package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSessionRepository(newDB(db, logger.Nop()), logger.Nop()), mock
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	session := models.Session{SessionID: "s-1", UserID: 3, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("s-1", int64(3), now, now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("SELECT s.session_id").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "user_id", "email", "created_at", "expires_at"}).
			AddRow("s-1", 3, "admin@archive.test", now, now.Add(time.Hour)))

	require.NoError(t, repo.CreateSession(ctx, session))

	got, err := repo.GetSession(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@archive.test", got.Email)
	assert.Equal(t, int64(3), got.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT s.session_id").
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "user_id", "email", "created_at", "expires_at"}))

	_, err := repo.GetSession(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrSessionNotFound},
		{name: "db failure", execErr: errors.New("conn reset"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSessionRepo(t)

			exp := mock.ExpectExec("DELETE FROM sessions WHERE session_id").WithArgs("s-1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeleteSession(context.Background(), "s-1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM sessions WHERE expires_at").
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
