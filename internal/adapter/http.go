package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/utils"
	"github.com/MKhiriev/char-archive/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if baseURL == "" {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	if u, err := url.Parse(baseURL); err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, adapterCfg.HTTPAddress)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed).
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignInWithPassword implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. The token is taken from the Authorization response
// header, falling back to the access_token field of the body.
func (h *httpServerAdapter) SignInWithPassword(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&session).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		token = session.AccessToken
	}
	if token == "" {
		return models.Session{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	session.AccessToken = token
	h.SetToken(token)
	return session, nil
}

// SignOut implements [ServerAdapter]. The local token is dropped only when
// the server accepted the logout.
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) GetSession(ctx context.Context) (models.Session, error) {
	if h.Token() == "" {
		return models.Session{}, fmt.Errorf("%w: no token", ErrUnauthorized)
	}

	var session models.Session
	resp, err := h.authedRequest(ctx).
		SetResult(&session).
		Get("/api/auth/session")
	if err != nil {
		return models.Session{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session.AccessToken = h.Token()
	return session, nil
}

func (h *httpServerAdapter) SelectCharacters(ctx context.Context) ([]models.Character, error) {
	var characters []models.Character

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&characters).
		Get("/api/characters")
	if err != nil {
		return nil, fmt.Errorf("select characters request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if characters == nil {
		characters = []models.Character{}
	}
	return characters, nil
}

func (h *httpServerAdapter) SaveCharacter(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error) {
	var saved models.SaveResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&saved).
		Put("/api/characters")
	if err != nil {
		return models.SaveResponse{}, fmt.Errorf("save character request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveResponse{}, err
	}

	return saved, nil
}

func (h *httpServerAdapter) DeleteCharacter(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/characters/{id}")
	if err != nil {
		return fmt.Errorf("delete character request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListObjects(ctx context.Context, folder string) ([]models.StorageObject, error) {
	var list models.ListObjectsResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("folder", folder).
		SetResult(&list).
		Get("/api/storage/objects")
	if err != nil {
		return nil, fmt.Errorf("list objects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Objects, nil
}

// UploadObject implements [ServerAdapter]. The body is streamed as the raw
// request body to POST /api/storage/objects/<objectPath>.
func (h *httpServerAdapter) UploadObject(ctx context.Context, objectPath string, contentType string, body io.Reader) (models.UploadResponse, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var uploaded models.UploadResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		SetResult(&uploaded).
		Post("/api/storage/objects/" + escapeObjectPath(objectPath))
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload object request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	return uploaded, nil
}

func (h *httpServerAdapter) RemoveObjects(ctx context.Context, objectPaths []string) error {
	if len(objectPaths) == 0 {
		return nil
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RemoveObjectsRequest{Paths: objectPaths}).
		Delete("/api/storage/objects")
	if err != nil {
		return fmt.Errorf("remove objects request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func escapeObjectPath(objectPath string) string {
	segments := strings.Split(strings.Trim(objectPath, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

