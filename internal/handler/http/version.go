package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/char-archive/internal/logger"
)

// getServerVersion answers GET /api/version with the bare version string
// shown on the client's about screen. Caching is disabled so a redeployed
// archive reports its new version at once.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("writing version failed")
	}
}
