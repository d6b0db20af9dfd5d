package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultSessionFile is used when the client config names no session file.
const DefaultSessionFile = ".char-archive-session.json"

type sessionFile struct {
	AccessToken string    `json:"access_token"`
	SavedAt     time.Time `json:"saved_at"`
}

type fileSessionStore struct {
	path string
	mu   sync.Mutex
}

// NewFileSessionStore returns a SessionStore backed by a JSON file readable
// only by the current user.
func NewFileSessionStore(path string) SessionStore {
	if strings.TrimSpace(path) == "" {
		path = DefaultSessionFile
	}
	return &fileSessionStore{path: path}
}

func (s *fileSessionStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading session file: %w", err)
	}

	var f sessionFile
	if err = json.Unmarshal(raw, &f); err != nil {
		return "", fmt.Errorf("error decoding session file: %w", err)
	}
	return f.AccessToken, nil
}

func (s *fileSessionStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sessionFile{AccessToken: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating session directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing session file: %w", err)
	}
	return nil
}
