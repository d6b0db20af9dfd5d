// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the terminal client
// and the archive server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// server's error message is kept in the wrapped error text so alerts can show it.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/char-archive/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the archive server: the auth
// gateway, the characters endpoints and the image bucket.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// SignInWithPassword exchanges credentials for a session. On success the
	// session's access token is stored via SetToken.
	SignInWithPassword(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// SignOut revokes the current session and forgets the token.
	SignOut(ctx context.Context) error

	// GetSession returns the session behind the stored token.
	// Returns [ErrUnauthorized] when there is none.
	GetSession(ctx context.Context) (models.Session, error)

	// SelectCharacters fetches every character with its stats, name ascending.
	SelectCharacters(ctx context.Context) ([]models.Character, error)

	// SaveCharacter sends a transactional insert-or-update.
	SaveCharacter(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error)

	// DeleteCharacter deletes the character row.
	DeleteCharacter(ctx context.Context, id int64) error

	// ListObjects lists the bucket objects directly inside folder.
	ListObjects(ctx context.Context, folder string) ([]models.StorageObject, error)

	// UploadObject stores body under objectPath and returns its public URL.
	UploadObject(ctx context.Context, objectPath string, contentType string, body io.Reader) (models.UploadResponse, error)

	// RemoveObjects deletes the given bucket objects.
	RemoveObjects(ctx context.Context, objectPaths []string) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
