package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
)

// appInfoService reports the archive server's release version.
type appInfoService struct {
	version string
}

// NewAppInfoService requires a non-blank App.Version; surrounding
// whitespace from env files is dropped.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		logger.Error().Str("func", "NewAppInfoService").Msg("archive version is not configured")
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("archive server version")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
