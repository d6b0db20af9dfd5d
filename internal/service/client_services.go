package service

import (
	"github.com/MKhiriev/char-archive/internal/adapter"
	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/store"
)

type ClientServices struct {
	AuthService      ClientAuthService
	CharacterService ClientCharacterService
	ArchiveService   ClientArchiveService
	AppInfoService   ClientAppInfoService
	RefreshJob       ClientRefreshJob
}

// NewClientServices wires the client services around one server adapter.
// onRefresh is called after each successful background refresh.
func NewClientServices(serverAdapter adapter.ServerAdapter, sessions store.SessionStore, notifier Notifier, cfg config.ClientConfig, onRefresh func(), logger *logger.Logger) *ClientServices {
	bucket := cfg.Storage.Bucket
	if bucket == "" {
		bucket = config.DefaultBucket
	}

	characterSvc := NewClientCharacterService(serverAdapter, bucket, logger)
	archiveSvc := NewClientArchiveService(characterSvc, notifier, logger)

	return &ClientServices{
		AuthService:      NewClientAuthService(serverAdapter, sessions, notifier, logger),
		CharacterService: characterSvc,
		ArchiveService:   archiveSvc,
		AppInfoService:   NewClientAppInfoService(serverAdapter),
		RefreshJob:       NewClientRefreshJob(archiveSvc, onRefresh, logger),
	}
}
