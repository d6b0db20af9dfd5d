package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/char-archive/models"
)

// Notifier is the user-facing side channel of the client workflows.
// The terminal UI implements it with modal overlays.
type Notifier interface {
	// Alert shows a message the user has to acknowledge.
	Alert(message string)

	// Confirm asks a yes/no question and blocks until it is answered.
	Confirm(message string) bool

	// Reload re-initialises every view from fresh server state.
	Reload()
}

// ClientAuthService is the client side of the auth gateway. It owns the
// boolean admin flag the rest of the UI keys off.
type ClientAuthService interface {
	// Login signs in with email and password. Failures are alerted and returned.
	Login(ctx context.Context, email, password string) error

	// Logout revokes the session. The admin flag is kept when it fails.
	Logout(ctx context.Context) error

	// GetSession returns the current session, or nil when signed out.
	GetSession(ctx context.Context) (*models.Session, error)

	// CheckAuthStatus refreshes and returns the admin flag.
	CheckAuthStatus(ctx context.Context) bool

	// Restore loads the persisted token and checks it with the server.
	Restore(ctx context.Context) bool

	IsAdmin() bool
}

// ClientCharacterService is the client repository: character rows and their
// images, reached through the server adapter.
type ClientCharacterService interface {
	// FetchAll returns every character with stats, ordered by name.
	FetchAll(ctx context.Context) ([]models.Character, error)

	// UploadImage stores file under folder and returns its public URL.
	// Main and icon uploads first remove earlier objects of the same kind.
	UploadImage(ctx context.Context, file models.ImageFile, folder string, kind models.ImageKind) (string, error)

	// DeleteImage removes the object behind a public URL. Empty and
	// placeholder URLs are ignored.
	DeleteImage(ctx context.Context, publicURL string) error

	// Save writes the character and stats field sets and returns the id.
	// A nil id creates a character.
	Save(ctx context.Context, character models.CharacterFields, stats models.StatsFields, id *int64) (int64, error)

	// Delete removes every image of the character and then the row.
	Delete(ctx context.Context, id int64, slug string) error
}

// ClientArchiveService owns the in-memory character list and runs the save
// and delete workflows against it.
type ClientArchiveService interface {
	// Characters returns a copy of the cached list.
	Characters() []models.Character

	// Refresh replaces the cached list with a fresh fetch.
	Refresh(ctx context.Context) error

	// Save runs the save workflow. onDone is called when it finishes,
	// whatever the outcome, unless the call was rejected because another
	// save is in flight.
	Save(ctx context.Context, input models.SaveInput, onDone func()) (models.SaveReport, error)

	// Delete runs the delete workflow after asking for confirmation.
	Delete(ctx context.Context, id int64, slug string) error

	// Saving reports whether a save is in flight.
	Saving() bool

	// Wait blocks until background image cleanups have finished.
	Wait()
}

// ClientAppInfoService reports build and server versions.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}

// ClientRefreshJob re-fetches the character list in the background.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 1 minute if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
