package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewAppInfoService ───────────────────────────────────────────────────────

func TestNewAppInfoService_RejectsMissingVersion(t *testing.T) {
	for _, version := range []string{"", "   ", "\n"} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified, "version %q", version)
	}
}

// ── GetAppVersion ───────────────────────────────────────────────────────────

func TestAppInfoService_GetAppVersion(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		want       string
	}{
		{"release", "1.4.0", "1.4.0"},
		{"pre-release with build metadata", "v2.0.0-rc.1+archive.7", "v2.0.0-rc.1+archive.7"},
		{"padding from env file", "  1.4.1\n", "1.4.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.configured}, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_GetAppVersion_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.4.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, "1.4.0", svc.GetAppVersion(ctx))
}
