package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/char-archive/internal/app"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/utils"
	"github.com/MKhiriev/char-archive/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r.Body, &credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	log.Debug().Str("email", credentials.Email).Msg("login attempt")

	session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	log.Debug().Int64("user_id", session.UserID).Str("session_id", session.SessionID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", session.AccessToken))
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		logger.FromRequest(r).Error().Str("func", "*Handler.logout").Msg("no session id in context")
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, sessionID); err != nil {
		writeServiceError(w, r, err, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		logger.FromRequest(r).Error().Str("func", "*Handler.session").Msg("no session id in context")
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	session, err := h.services.AuthService.GetSession(ctx, sessionID)
	if err != nil {
		writeServiceError(w, r, err, "session lookup failed")
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}
