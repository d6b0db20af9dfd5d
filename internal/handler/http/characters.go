// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/char-archive/internal/app"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/utils"
	"github.com/MKhiriev/char-archive/models"
	"github.com/go-chi/chi/v5"
)

// listCharacters returns every character with its stats, ordered by name.
// The list is public.
func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := h.services.CharacterService.ListCharacters(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "listing characters failed")
		return
	}

	utils.WriteJSON(w, characters, http.StatusOK)
}

// saveCharacter inserts or updates a character and its stats in one
// transaction. 201 is returned for inserts and 200 for updates.
func (h *Handler) saveCharacter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SaveRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	saved, err := h.services.CharacterService.SaveCharacter(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "saving character failed")
		return
	}

	status := http.StatusOK
	if saved.Created {
		status = http.StatusCreated
	}
	log.Info().Int64("character_id", saved.ID).Bool("created", saved.Created).Msg("character saved")

	utils.WriteJSON(w, saved, status)
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Warn().Str("id", chi.URLParam(r, "id")).Msg("invalid character id")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.CharacterService.DeleteCharacter(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "deleting character failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
