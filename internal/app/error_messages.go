// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by both the
// archive server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of HTTP error bodies. The client matches on them to recover
// typed errors and shows them verbatim in alerts.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginCredentials is returned when the email/password pair
	// does not match an administrator account.
	MsgInvalidLoginCredentials = "invalid login credentials"

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified, has expired, or its session was revoked.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgVersionIsNotSpecified is returned when the server has no version configured.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgEmailAlreadyExists is returned when creating an administrator whose
	// email is taken.
	MsgEmailAlreadyExists = "email already exists"

	// MsgCharacterNotFound is returned when an update or delete targets an
	// unknown character id.
	MsgCharacterNotFound = "character not found"

	// MsgSlugAlreadyExists is returned when two characters would share a slug.
	MsgSlugAlreadyExists = "character slug already exists"

	// MsgNothingToSave is returned for a save request without fields.
	MsgNothingToSave = "nothing to save"

	// MsgObjectExists is returned when an upload targets a taken path.
	MsgObjectExists = "object already exists"

	// MsgObjectNotFound is returned when a requested object does not exist.
	MsgObjectNotFound = "object not found"

	// MsgInvalidObjectPath is returned for object paths outside a character folder.
	MsgInvalidObjectPath = "invalid object path"

	// MsgImageTooLarge is returned when an upload exceeds the size limit.
	MsgImageTooLarge = "image is too large"

	// MsgUnsupportedMediaType is returned when an upload is not an image.
	MsgUnsupportedMediaType = "only images can be uploaded"
)
