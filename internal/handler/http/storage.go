package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/char-archive/internal/app"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/utils"
	"github.com/MKhiriev/char-archive/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listObjects(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get("folder")

	objects, err := h.services.StorageService.ListObjects(r.Context(), folder)
	if err != nil {
		writeServiceError(w, r, err, "listing objects failed")
		return
	}

	utils.WriteJSON(w, models.ListObjectsResponse{Objects: objects}, http.StatusOK)
}

// uploadObject stores the raw request body at the path after
// /api/storage/objects/. Existing objects are never overwritten.
func (h *Handler) uploadObject(w http.ResponseWriter, r *http.Request) {
	objectPath := chi.URLParam(r, "*")

	uploaded, err := h.services.StorageService.UploadObject(r.Context(), objectPath, r.Header.Get("Content-Type"), r.Body)
	if err != nil {
		writeServiceError(w, r, err, "uploading object failed")
		return
	}

	logger.FromRequest(r).Info().Str("path", uploaded.Path).Msg("object uploaded")
	utils.WriteJSON(w, uploaded, http.StatusCreated)
}

func (h *Handler) removeObjects(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveObjectsRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.StorageService.RemoveObjects(r.Context(), req.Paths); err != nil {
		writeServiceError(w, r, err, "removing objects failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// downloadObject serves a public object of the configured bucket.
func (h *Handler) downloadObject(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "bucket") != h.services.StorageService.Bucket() {
		utils.WriteError(w, app.MsgObjectNotFound, http.StatusNotFound)
		return
	}

	body, object, err := h.services.StorageService.OpenObject(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		writeServiceError(w, r, err, "opening object failed")
		return
	}
	defer body.Close()

	contentType := object.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if object.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(object.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.downloadObject").Msg("streaming object failed")
	}
}
