package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStore persists the administrator's bearer token between client
// runs. An empty token means "signed out".
type SessionStore interface {
	// Load returns the stored token, or "" when nothing is stored.
	Load() (string, error)

	// Save replaces the stored token.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}
