// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/char-archive/internal/adapter"
	"github.com/MKhiriev/char-archive/internal/app"
	"github.com/MKhiriev/char-archive/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgNothingToSave:
			return store.ErrNothingToSave
		case app.MsgInvalidObjectPath:
			return ErrInvalidObjectPath
		case app.MsgVersionIsNotSpecified:
			return ErrVersionIsNotSpecified
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginCredentials:
			return ErrWrongCredentials
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrNotAuthenticated

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgCharacterNotFound:
			return store.ErrCharacterNotFound
		case app.MsgObjectNotFound:
			return store.ErrObjectNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgSlugAlreadyExists:
			return store.ErrSlugAlreadyExists
		case app.MsgObjectExists:
			return store.ErrObjectExists
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		}

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrImageTooLarge

	case errors.Is(err, adapter.ErrUnsupportedMedia):
		return ErrUnsupportedContentType
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
