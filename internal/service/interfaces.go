package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CharacterServiceWrapper

import (
	"context"
	"io"

	"github.com/MKhiriev/char-archive/models"
)

// AuthService is the server side of the auth gateway.
type AuthService interface {
	// Login verifies credentials, opens a session and signs a token for it.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// ParseToken verifies a bearer token and checks that its session is alive.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetSession returns the live session with the given id.
	GetSession(ctx context.Context, sessionID string) (models.Session, error)

	// Logout revokes the session.
	Logout(ctx context.Context, sessionID string) error

	// CreateUser registers an administrator.
	CreateUser(ctx context.Context, credentials models.Credentials) (models.User, error)
}

// CharacterService exposes the character table to handlers.
type CharacterService interface {
	ListCharacters(ctx context.Context) ([]models.Character, error)
	SaveCharacter(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error)
	DeleteCharacter(ctx context.Context, id int64) error
}

// StorageService guards the image bucket.
type StorageService interface {
	ListObjects(ctx context.Context, folder string) ([]models.StorageObject, error)
	UploadObject(ctx context.Context, objectPath string, contentType string, body io.Reader) (models.UploadResponse, error)
	RemoveObjects(ctx context.Context, objectPaths []string) error
	OpenObject(ctx context.Context, objectPath string) (io.ReadCloser, models.StorageObject, error)
	Bucket() string
}

// ImportService loads a legacy characters.json archive into the database.
type ImportService interface {
	// Convert turns the legacy archive into characters, reporting every
	// repaired lore fragment as a warning.
	Convert(archive models.LegacyArchive) ([]models.Character, []string)

	// Import converts and writes the archive. With dryRun nothing is written.
	Import(ctx context.Context, archive models.LegacyArchive, dryRun bool) (models.ImportReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CharacterServiceWrapper defines middleware composition for CharacterService.
// Implementations wrap an existing CharacterService to add behavior such as
// validation.
type CharacterServiceWrapper interface {
	Wrap(CharacterService) CharacterService
}
