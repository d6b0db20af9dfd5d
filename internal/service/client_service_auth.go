package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/char-archive/internal/adapter"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/models"
)

// loginReloadDelay gives the login overlay time to close before every view
// is rebuilt.
const loginReloadDelay = 100 * time.Millisecond

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionStore
	notifier Notifier

	mu      sync.RWMutex
	isAdmin bool

	// schedule runs f after d; replaced in tests.
	schedule func(d time.Duration, f func())

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions store.SessionStore, notifier Notifier, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:  serverAdapter,
		sessions: sessions,
		notifier: notifier,
		schedule: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		logger:   logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) error {
	session, err := a.adapter.SignInWithPassword(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		err = mapAdapterError(err)
		a.logger.Err(err).Str("email", email).Msg("login failed")
		a.notifier.Alert("Authentication failed: " + err.Error())
		return err
	}

	if err = a.sessions.Save(session.AccessToken); err != nil {
		a.logger.Warn().Err(err).Msg("session could not be persisted")
	}

	a.setAdmin(true)
	a.logger.Info().Str("email", email).Msg("administrator signed in")

	a.schedule(loginReloadDelay, a.notifier.Reload)
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.SignOut(ctx); err != nil {
		err = mapAdapterError(err)
		a.logger.Err(err).Msg("logout failed")
		a.notifier.Alert("Logout failed: " + err.Error())
		return err
	}

	a.setAdmin(false)
	if err := a.sessions.Clear(); err != nil {
		a.logger.Warn().Err(err).Msg("session file could not be cleared")
	}

	a.notifier.Reload()
	return nil
}

// GetSession returns nil without an error when no token is held or the
// server no longer accepts it.
func (a *clientAuthService) GetSession(ctx context.Context) (*models.Session, error) {
	if a.adapter.Token() == "" {
		return nil, nil
	}

	session, err := a.adapter.GetSession(ctx)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrTokenIsExpiredOrInvalid) {
			a.adapter.SetToken("")
			if clearErr := a.sessions.Clear(); clearErr != nil {
				a.logger.Warn().Err(clearErr).Msg("session file could not be cleared")
			}
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (a *clientAuthService) CheckAuthStatus(ctx context.Context) bool {
	session, err := a.GetSession(ctx)
	if err != nil {
		a.logger.Err(err).Msg("auth status check failed")
		a.setAdmin(false)
		return false
	}

	a.setAdmin(session != nil)
	return session != nil
}

func (a *clientAuthService) Restore(ctx context.Context) bool {
	token, err := a.sessions.Load()
	if err != nil {
		a.logger.Warn().Err(err).Msg("stored session could not be read")
	}
	if token != "" {
		a.adapter.SetToken(token)
	}
	return a.CheckAuthStatus(ctx)
}

func (a *clientAuthService) IsAdmin() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.isAdmin
}

func (a *clientAuthService) setAdmin(v bool) {
	a.mu.Lock()
	a.isAdmin = v
	a.mu.Unlock()
}
