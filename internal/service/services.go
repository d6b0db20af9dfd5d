package service

import (
	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/store"
)

type Services struct {
	AuthService      AuthService
	CharacterService CharacterService
	StorageService   StorageService
	ImportService    ImportService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	characters := NewCharacterValidationService(logger).Wrap(
		NewCharacterService(storages.CharacterRepository, logger),
	)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		CharacterService: characters,
		StorageService:   NewStorageService(storages.ObjectStorage, cfg.Storage.Files, logger),
		ImportService:    NewImportService(storages.CharacterRepository, logger),
		AppInfoService:   appInfo,
	}, nil
}
