package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/mock"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/internal/utils"
	"github.com/MKhiriev/char-archive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "char-archive-test",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthService(users, sessions, testAppConfig, logger.Nop()).(*authService)
	return svc, users, sessions
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, sessions := newTestAuthService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	users.EXPECT().FindUserByEmail(ctx, "admin@archive.test").Return(models.User{
		UserID:       7,
		Email:        "admin@archive.test",
		PasswordHash: mustHash(t, "hunter2"),
	}, nil)

	var stored models.Session
	sessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Session) error {
			stored = s
			return nil
		},
	)

	session, err := svc.Login(ctx, models.Credentials{Email: "admin@archive.test", Password: "hunter2"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), session.UserID)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, stored.SessionID, session.SessionID)
	assert.Equal(t, now.Add(time.Hour), stored.ExpiresAt)
	assert.Empty(t, stored.AccessToken, "the token itself is never persisted")

	token, err := utils.ValidateAndParseJWTToken(session.AccessToken, testAppConfig.TokenSignKey, testAppConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, token.SessionID)
	assert.Equal(t, int64(7), token.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ghost@archive.test").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.Credentials{Email: "ghost@archive.test", Password: "x"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "admin@archive.test").Return(models.User{
		UserID: 1, PasswordHash: mustHash(t, "right"),
	}, nil)

	_, err := svc.Login(ctx, models.Credentials{Email: "admin@archive.test", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_SessionCreationFails(t *testing.T) {
	svc, users, sessions := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{UserID: 1, PasswordHash: mustHash(t, "pw")}, nil)
	sessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.test", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.test", Password: "pw"})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func issueTestToken(t *testing.T, userID int64, sessionID string) string {
	t.Helper()
	tok, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, userID, sessionID, time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	return tok.SignedString
}

func TestAuthService_ParseToken_LiveSession(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)
	ctx := context.Background()

	sessions.EXPECT().GetSession(ctx, "s-1").Return(models.Session{
		SessionID: "s-1", UserID: 3, ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	token, err := svc.ParseToken(ctx, issueTestToken(t, 3, "s-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), token.UserID)
	assert.Equal(t, "s-1", token.SessionID)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		err     error
	}{
		{"revoked", models.Session{}, store.ErrSessionNotFound},
		{"expired row", models.Session{SessionID: "s-1", UserID: 3, ExpiresAt: time.Now().Add(-time.Minute)}, nil},
		{"different owner", models.Session{SessionID: "s-1", UserID: 4, ExpiresAt: time.Now().Add(time.Hour)}, nil},
		{"lookup failure", models.Session{}, store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, sessions := newTestAuthService(t)
			ctx := context.Background()

			sessions.EXPECT().GetSession(ctx, "s-1").Return(tt.session, tt.err)

			_, err := svc.ParseToken(ctx, issueTestToken(t, 3, "s-1"))
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_BadSignature(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Logout / GetSession ──────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)
	ctx := context.Background()

	sessions.EXPECT().DeleteSession(ctx, "s-1").Return(nil)
	sessions.EXPECT().DeleteSession(ctx, "gone").Return(store.ErrSessionNotFound)
	sessions.EXPECT().DeleteSession(ctx, "broken").Return(store.ErrExecutingStatement)

	assert.NoError(t, svc.Logout(ctx, "s-1"))
	assert.NoError(t, svc.Logout(ctx, "gone"), "an already revoked session counts as logged out")
	assert.ErrorIs(t, svc.Logout(ctx, "broken"), store.ErrExecutingStatement)
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)
	ctx := context.Background()

	sessions.EXPECT().GetSession(ctx, "s-1").Return(models.Session{ExpiresAt: time.Now().Add(-time.Second)}, nil)

	_, err := svc.GetSession(ctx, "s-1")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestAuthService_CreateUser_HashesPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "admin@archive.test", u.Email)
			assert.NoError(t, utils.CheckPassword(u.PasswordHash, "hunter2"))
			u.UserID = 11
			return u, nil
		},
	)

	user, err := svc.CreateUser(ctx, models.Credentials{Email: "admin@archive.test", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), user.UserID)
}

func TestAuthService_CreateUser_Duplicate(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(ctx, models.Credentials{Email: "admin@archive.test", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}
