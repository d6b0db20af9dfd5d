package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/char-archive/models"
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists administrator accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SessionRepository persists login sessions. A JWT is honoured only while its
// session row exists.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// CharacterRepository persists characters together with their stats rows.
type CharacterRepository interface {
	// FetchAll returns every character joined with its stats, ordered by
	// name ascending.
	FetchAll(ctx context.Context) ([]models.Character, error)

	// Save inserts a new character (request without id) or updates an
	// existing one. Both tables are written in one transaction and the stats
	// write is an upsert.
	Save(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error)

	// Delete removes the character row; its stats row goes with it.
	Delete(ctx context.Context, id int64) error

	// Import upserts characters keyed by slug in a single transaction and
	// returns how many rows were written.
	Import(ctx context.Context, characters []models.Character) (int, error)
}

// ObjectStorage is the bucket that holds character images.
type ObjectStorage interface {
	// List returns the files directly inside folder. A missing folder is empty.
	List(ctx context.Context, folder string) ([]models.StorageObject, error)

	// Upload writes a new object. Existing paths are never overwritten.
	Upload(ctx context.Context, objectPath string, contentType string, body io.Reader) (models.StorageObject, error)

	// Remove deletes the given objects. Paths with nothing behind them are skipped.
	Remove(ctx context.Context, objectPaths ...string) error

	// Open returns a reader for a stored object.
	Open(ctx context.Context, objectPath string) (io.ReadCloser, models.StorageObject, error)

	// PublicURL is the address clients use to fetch objectPath.
	PublicURL(objectPath string) string
}
