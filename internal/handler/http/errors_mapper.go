package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/char-archive/internal/app"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins. Business errors
// come before the SQL ones they may wrap.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{store.ErrNothingToSave, errorResponse{http.StatusBadRequest, app.MsgNothingToSave}},
	{service.ErrInvalidObjectPath, errorResponse{http.StatusBadRequest, app.MsgInvalidObjectPath}},
	{store.ErrInvalidObjectPath, errorResponse{http.StatusBadRequest, app.MsgInvalidObjectPath}},
	{service.ErrVersionIsNotSpecified, errorResponse{http.StatusBadRequest, app.MsgVersionIsNotSpecified}},

	{service.ErrWrongCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginCredentials}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{store.ErrCharacterNotFound, errorResponse{http.StatusNotFound, app.MsgCharacterNotFound}},
	{store.ErrObjectNotFound, errorResponse{http.StatusNotFound, app.MsgObjectNotFound}},

	{store.ErrSlugAlreadyExists, errorResponse{http.StatusConflict, app.MsgSlugAlreadyExists}},
	{store.ErrObjectExists, errorResponse{http.StatusConflict, app.MsgObjectExists}},
	{store.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgEmailAlreadyExists}},

	{service.ErrImageTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgImageTooLarge}},
	{service.ErrUnsupportedContentType, errorResponse{http.StatusUnsupportedMediaType, app.MsgUnsupportedMediaType}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError logs err and writes the mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg(msg)
	}

	utils.WriteError(w, resp.message, resp.status)
}
