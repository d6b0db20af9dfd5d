package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongCredentials        = errors.New("invalid login credentials")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	ErrImageTooLarge          = errors.New("image is too large")
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrInvalidObjectPath      = errors.New("invalid object path")
)

// Client-side workflow errors.
var (
	// ErrSaveInProgress is returned for a save submitted while another is running.
	ErrSaveInProgress = errors.New("a save is already in progress")

	// ErrNotAuthenticated is returned when an admin action runs without a session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSyncFailed marks a failed refetch at the end of a save.
	ErrSyncFailed = errors.New("critical sync error")

	// ErrStorageCleanup is returned when a character's images could not be
	// removed, which blocks the row delete.
	ErrStorageCleanup = errors.New("failed to remove character images")
)
