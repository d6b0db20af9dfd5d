package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/internal/utils"
	"github.com/MKhiriev/char-archive/internal/validators"
	"github.com/MKhiriev/char-archive/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are verified against bcrypt hashes; every successful login opens
// a session row whose id becomes the "jti" claim of the issued JWT.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	validator         validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration is the lifetime of both the token and its session row.
	tokenDuration time.Duration

	idGenerator *utils.UUIDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the user and session
// repositories and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, sessions store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    users,
		sessionRepository: sessions,
		validator:         validators.NewCharacterValidator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		idGenerator:       utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// Login authenticates an administrator and opens a session.
//
// Returns the session with AccessToken filled in, or:
//   - ErrInvalidDataProvided if the credentials are malformed.
//   - ErrWrongCredentials if no user has the email or the password does not match.
//   - ErrTokenCreationFailed if the JWT could not be signed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", credentials.Email).Msg("login attempt for unknown email")
		return models.Session{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, credentials.Password); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("wrong password")
		return models.Session{}, ErrWrongCredentials
	}

	now := a.now().UTC()
	session := models.Session{
		SessionID: a.idGenerator.Generate(),
		UserID:    user.UserID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(a.tokenDuration),
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, session.SessionID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token generation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	session.AccessToken = token.SignedString
	log.Info().Int64("user_id", user.UserID).Str("session_id", session.SessionID).Msg("administrator signed in")
	return session, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Beyond the signature, issuer and expiry checks of
// utils.ValidateAndParseJWTToken, the session named by the "jti" claim must
// still exist and be unexpired, so a logout revokes the token at once. Any
// failure is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.GetSession(ctx, token.SessionID)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Str("session_id", token.SessionID).Msg("session lookup failed")
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if session.UserID != token.UserID || session.Expired(a.now()) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetSession returns the live session with the given id.
func (a *authService) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	session, err := a.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return models.Session{}, err
	}
	if session.Expired(a.now()) {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}
	return session, nil
}

// Logout deletes the session row. A session that is already gone counts as
// logged out.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	err := a.sessionRepository.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		log.Err(err).Str("session_id", sessionID).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	log.Info().Str("session_id", sessionID).Msg("administrator signed out")
	return nil
}

// CreateUser hashes the password and stores a new administrator.
// Used by archivectl; there is no public registration route.
func (a *authService) CreateUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Email: credentials.Email, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}
