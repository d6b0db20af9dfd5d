package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/char-archive/internal/app"
	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/mock"
	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/internal/utils"
	"github.com/MKhiriev/char-archive/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken     = "good-token"
	testSessionID = "0190f3b2-sess"
	testBucket    = "character-assets"
)

type testHandler struct {
	handler    *Handler
	router     *chi.Mux
	auth       *mock.MockAuthService
	characters *mock.MockCharacterService
	storage    *mock.MockStorageService
	appInfo    *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		auth:       mock.NewMockAuthService(ctrl),
		characters: mock.NewMockCharacterService(ctrl),
		storage:    mock.NewMockStorageService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}
	th.handler = NewHandler(&service.Services{
		AuthService:      th.auth,
		CharacterService: th.characters,
		StorageService:   th.storage,
		AppInfoService:   th.appInfo,
	}, config.Server{CORSOrigins: []string{"https://archive.example"}}, logger.Nop())
	th.router = th.handler.Init(0)
	return th
}

// authorized makes the next ParseToken call accept testToken.
func (th *testHandler) authorized() {
	th.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: 7, SessionID: testSessionID}, nil)
}

func (th *testHandler) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func withToken(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

// ── routing ──────────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svcs, config.Server{CORSOrigins: []string{"*"}}, log)

	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, []string{"*"}, h.corsOrigins)
}

func TestRoutes_AdminRoutesRequireToken(t *testing.T) {
	th := newTestHandler(t)

	admin := []struct{ method, path string }{
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/auth/session"},
		{http.MethodPut, "/api/characters"},
		{http.MethodDelete, "/api/characters/1"},
		{http.MethodGet, "/api/storage/objects"},
		{http.MethodPost, "/api/storage/objects/ashita/main-1.png"},
		{http.MethodDelete, "/api/storage/objects"},
	}
	for _, rt := range admin {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := th.do(newRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), errorMessage(t, rec))
		})
	}
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(newRequest(http.MethodPatch, "/api/characters", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = th.do(newRequest(http.MethodGet, "/api/nothing-here", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	th := newTestHandler(t)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	req := newRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-from-caller")
	assert.Equal(t, "trace-from-caller", th.do(req).Header().Get(traceIDHeader))

	req = newRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, strings.Repeat("x", maxTraceIDLength+1))
	generated := th.do(req).Header().Get(traceIDHeader)
	assert.Len(t, generated, 36, "an oversized trace id is replaced with a uuid")
}

func TestRoutes_CORSPreflight(t *testing.T) {
	th := newTestHandler(t)

	req := newRequest(http.MethodOptions, "/api/characters", nil)
	req.Header.Set("Origin", "https://archive.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")

	rec := th.do(req)
	assert.Equal(t, "https://archive.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = newRequest(http.MethodOptions, "/api/characters", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	assert.Empty(t, th.do(req).Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_RecoversFromPanic(t *testing.T) {
	th := newTestHandler(t)
	th.characters.EXPECT().ListCharacters(gomock.Any()).DoAndReturn(func(any) ([]models.Character, error) {
		panic("boom")
	})

	rec := th.do(newRequest(http.MethodGet, "/api/characters", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, errorMessage(t, rec))
}

// ── version ──────────────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	th := newTestHandler(t)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := th.do(newRequest(http.MethodGet, "/api/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	credentials := models.Credentials{Email: "admin@archive.example", Password: "hunter2"}

	t.Run("success", func(t *testing.T) {
		th := newTestHandler(t)
		th.auth.EXPECT().Login(gomock.Any(), credentials).Return(models.Session{
			SessionID: testSessionID, UserID: 7, AccessToken: "signed.jwt.token",
		}, nil)

		rec := th.do(newRequest(http.MethodPost, "/api/auth/login", credentials))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

		var session models.Session
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
		assert.Equal(t, "signed.jwt.token", session.AccessToken)
		assert.Equal(t, int64(7), session.UserID)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		th := newTestHandler(t)
		th.auth.EXPECT().Login(gomock.Any(), credentials).Return(models.Session{}, service.ErrWrongCredentials)

		rec := th.do(newRequest(http.MethodPost, "/api/auth/login", credentials))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, app.MsgInvalidLoginCredentials, errorMessage(t, rec))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		th := newTestHandler(t)

		rec := th.do(newRequest(http.MethodPost, "/api/auth/login", `{"email":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidDataProvided, errorMessage(t, rec))
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		th := newTestHandler(t)

		rec := th.do(newRequest(http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"x","otp":"1"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		parse   error
		wantMsg string
	}{
		{"wrong scheme", "Basic abc", nil, ErrInvalidAuthorizationHeader.Error()},
		{"no token", "Bearer ", nil, ErrInvalidAuthorizationHeader.Error()},
		{"revoked session", "Bearer " + testToken, service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
		{"unexpected parse failure", "Bearer " + testToken, errors.New("db down"), app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.parse != nil {
				th.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, tt.parse)
			}

			req := newRequest(http.MethodGet, "/api/auth/session", nil)
			req.Header.Set("Authorization", tt.header)

			rec := th.do(req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("bearer  abc.def ")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = getTokenFromAuthHeader("abc.def")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
}

func TestLogout(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()
	th.auth.EXPECT().Logout(gomock.Any(), testSessionID).Return(nil)

	rec := th.do(withToken(newRequest(http.MethodPost, "/api/auth/logout", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSession(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()
	th.auth.EXPECT().GetSession(gomock.Any(), testSessionID).
		Return(models.Session{SessionID: testSessionID, UserID: 7}, nil)

	rec := th.do(withToken(newRequest(http.MethodGet, "/api/auth/session", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var session models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, testSessionID, session.SessionID)
}

// ── characters ───────────────────────────────────────────────────────────────

func TestListCharacters(t *testing.T) {
	th := newTestHandler(t)
	th.characters.EXPECT().ListCharacters(gomock.Any()).Return([]models.Character{
		{ID: 1, Slug: "ashita", Name: "Ashita Kazumi", Role: models.RoleProtagonist},
	}, nil)

	rec := th.do(newRequest(http.MethodGet, "/api/characters", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "ashita", list[0].Slug)
}

func TestListCharacters_GZip(t *testing.T) {
	th := newTestHandler(t)
	th.characters.EXPECT().ListCharacters(gomock.Any()).Return([]models.Character{{ID: 1, Slug: "rin"}}, nil)

	req := newRequest(http.MethodGet, "/api/characters", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rec := th.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(plain), `"slug":"rin"`)
}

func TestSaveCharacter(t *testing.T) {
	name, slug := "Ashita Kazumi", "ashita"
	id := int64(5)

	t.Run("insert answers 201", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()
		req := models.SaveRequest{Character: models.CharacterFields{Slug: &slug, Name: &name}}
		th.characters.EXPECT().SaveCharacter(gomock.Any(), req).Return(models.SaveResponse{ID: 42, Created: true}, nil)

		rec := th.do(withToken(newRequest(http.MethodPut, "/api/characters", req)))
		require.Equal(t, http.StatusCreated, rec.Code)

		var saved models.SaveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
		assert.Equal(t, int64(42), saved.ID)
	})

	t.Run("update answers 200", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()
		req := models.SaveRequest{ID: &id, Character: models.CharacterFields{Name: &name}}
		th.characters.EXPECT().SaveCharacter(gomock.Any(), req).Return(models.SaveResponse{ID: 5}, nil)

		rec := th.do(withToken(newRequest(http.MethodPut, "/api/characters", req)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("duplicate slug answers 409", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()
		th.characters.EXPECT().SaveCharacter(gomock.Any(), gomock.Any()).
			Return(models.SaveResponse{}, errors.Join(store.ErrSlugAlreadyExists, store.ErrExecutingStatement))

		rec := th.do(withToken(newRequest(http.MethodPut, "/api/characters", models.SaveRequest{Character: models.CharacterFields{Slug: &slug, Name: &name}})))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, app.MsgSlugAlreadyExists, errorMessage(t, rec))
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()
		th.characters.EXPECT().SaveCharacter(gomock.Any(), gomock.Any()).Return(models.SaveResponse{}, store.ErrCharacterNotFound)

		rec := th.do(withToken(newRequest(http.MethodPut, "/api/characters", models.SaveRequest{ID: &id, Character: models.CharacterFields{Name: &name}})))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgCharacterNotFound, errorMessage(t, rec))
	})
}

func TestDeleteCharacter(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()
		th.characters.EXPECT().DeleteCharacter(gomock.Any(), int64(5)).Return(nil)

		rec := th.do(withToken(newRequest(http.MethodDelete, "/api/characters/5", nil)))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()

		rec := th.do(withToken(newRequest(http.MethodDelete, "/api/characters/abc", nil)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()
		th.characters.EXPECT().DeleteCharacter(gomock.Any(), int64(9)).Return(store.ErrCharacterNotFound)

		rec := th.do(withToken(newRequest(http.MethodDelete, "/api/characters/9", nil)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// ── storage ──────────────────────────────────────────────────────────────────

func TestListObjects(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()
	th.storage.EXPECT().ListObjects(gomock.Any(), "ashita/gallery").
		Return([]models.StorageObject{{Name: "1-a.png", Path: "ashita/gallery/1-a.png"}}, nil)

	rec := th.do(withToken(newRequest(http.MethodGet, "/api/storage/objects?folder=ashita/gallery", nil)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ListObjectsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Objects, 1)
	assert.Equal(t, "ashita/gallery/1-a.png", resp.Objects[0].Path)
}

func TestUploadObject(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		th := newTestHandler(t)
		th.authorized()
		th.storage.EXPECT().UploadObject(gomock.Any(), "ashita/main-1.png", "image/png", gomock.Any()).DoAndReturn(
			func(_ any, objectPath, _ string, body io.Reader) (models.UploadResponse, error) {
				data, err := io.ReadAll(body)
				require.NoError(t, err)
				assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
				return models.UploadResponse{Path: objectPath, PublicURL: "http://x/" + objectPath}, nil
			},
		)

		req := withToken(newRequest(http.MethodPost, "/api/storage/objects/ashita/main-1.png", []byte{0x89, 'P', 'N', 'G'}))
		req.Header.Set("Content-Type", "image/png")

		rec := th.do(req)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"path":"ashita/main-1.png"`)
	})

	t.Run("failures", func(t *testing.T) {
		tests := []struct {
			err        error
			wantStatus int
			wantMsg    string
		}{
			{service.ErrImageTooLarge, http.StatusRequestEntityTooLarge, app.MsgImageTooLarge},
			{service.ErrUnsupportedContentType, http.StatusUnsupportedMediaType, app.MsgUnsupportedMediaType},
			{store.ErrObjectExists, http.StatusConflict, app.MsgObjectExists},
			{service.ErrInvalidObjectPath, http.StatusBadRequest, app.MsgInvalidObjectPath},
		}
		for _, tt := range tests {
			t.Run(tt.wantMsg, func(t *testing.T) {
				th := newTestHandler(t)
				th.authorized()
				th.storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.UploadResponse{}, tt.err)

				rec := th.do(withToken(newRequest(http.MethodPost, "/api/storage/objects/ashita/x.png", "data")))
				assert.Equal(t, tt.wantStatus, rec.Code)
				assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
			})
		}
	})
}

func TestRemoveObjects(t *testing.T) {
	th := newTestHandler(t)
	th.authorized()
	th.storage.EXPECT().RemoveObjects(gomock.Any(), []string{"ashita/main-1.png", "ashita/icon-1.png"}).Return(nil)

	body := models.RemoveObjectsRequest{Paths: []string{"ashita/main-1.png", "ashita/icon-1.png"}}
	rec := th.do(withToken(newRequest(http.MethodDelete, "/api/storage/objects", body)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDownloadObject(t *testing.T) {
	t.Run("serves object bytes", func(t *testing.T) {
		th := newTestHandler(t)
		th.storage.EXPECT().Bucket().Return(testBucket)
		th.storage.EXPECT().OpenObject(gomock.Any(), "ashita/main-1.png").Return(
			io.NopCloser(strings.NewReader("PNGDATA")),
			models.StorageObject{Path: "ashita/main-1.png", Size: 7, ContentType: "image/png"},
			nil,
		)

		req := newRequest(http.MethodGet, "/storage/v1/object/public/"+testBucket+"/ashita/main-1.png", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		rec := th.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Empty(t, rec.Header().Get("Content-Encoding"), "images are not compressed")
		assert.Equal(t, "PNGDATA", rec.Body.String())
	})

	t.Run("other bucket", func(t *testing.T) {
		th := newTestHandler(t)
		th.storage.EXPECT().Bucket().Return(testBucket)

		rec := th.do(newRequest(http.MethodGet, "/storage/v1/object/public/secrets/a.png", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing object", func(t *testing.T) {
		th := newTestHandler(t)
		th.storage.EXPECT().Bucket().Return(testBucket)
		th.storage.EXPECT().OpenObject(gomock.Any(), "ashita/none.png").Return(nil, models.StorageObject{}, store.ErrObjectNotFound)

		rec := th.do(newRequest(http.MethodGet, "/storage/v1/object/public/"+testBucket+"/ashita/none.png", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgObjectNotFound, errorMessage(t, rec))
	})
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := map[error]int{
		service.ErrInvalidDataProvided:     http.StatusBadRequest,
		store.ErrNothingToSave:             http.StatusBadRequest,
		service.ErrWrongCredentials:        http.StatusUnauthorized,
		service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
		store.ErrCharacterNotFound:         http.StatusNotFound,
		store.ErrEmailAlreadyExists:        http.StatusConflict,
		store.ErrExecutingQuery:            http.StatusInternalServerError,
		errors.New("anything else"):        http.StatusInternalServerError,
	}
	for err, want := range tests {
		assert.Equal(t, want, statusFromError(err), err.Error())
	}
}
