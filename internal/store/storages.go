package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
)

// Storages bundles every server-side persistence component.
type Storages struct {
	DB                  *DB
	UserRepository      UserRepository
	SessionRepository   SessionRepository
	CharacterRepository CharacterRepository
	ObjectStorage       ObjectStorage
}

// NewStorages connects to PostgreSQL, applies migrations and opens the bucket.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}

	objects, err := NewFileObjectStorage(cfg.Files, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error opening object storage: %w", err)
	}

	return &Storages{
		DB:                  db,
		UserRepository:      NewUserRepository(db, log),
		SessionRepository:   NewSessionRepository(db, log),
		CharacterRepository: NewCharacterRepository(db, log),
		ObjectStorage:       objects,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
