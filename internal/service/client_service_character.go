// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/char-archive/internal/adapter"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/models"
)

// placeholderMarker marks stock images that never live in the bucket.
const placeholderMarker = "placeholder"

type clientCharacterService struct {
	adapter adapter.ServerAdapter
	bucket  string
	now     func() time.Time

	logger *logger.Logger
}

func NewClientCharacterService(serverAdapter adapter.ServerAdapter, bucket string, logger *logger.Logger) ClientCharacterService {
	return &clientCharacterService{
		adapter: serverAdapter,
		bucket:  bucket,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *clientCharacterService) FetchAll(ctx context.Context) ([]models.Character, error) {
	characters, err := s.adapter.SelectCharacters(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return characters, nil
}

// UploadImage names main and icon objects "<kind>-<unix ms>.<ext>" inside
// folder and gallery objects "gallery/<unix ms>-<base>.<ext>". Failing to
// clear earlier main or icon objects is logged and does not stop the upload.
func (s *clientCharacterService) UploadImage(ctx context.Context, file models.ImageFile, folder string, kind models.ImageKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown image kind %q", ErrInvalidDataProvided, kind)
	}

	stamp := s.now().UnixMilli()

	var objectPath string
	switch kind {
	case models.ImageGallery:
		objectPath = path.Join(folder, "gallery", fmt.Sprintf("%d-%s.%s", stamp, file.BaseName(), file.Ext()))
	default:
		s.removeKind(ctx, folder, kind)
		objectPath = path.Join(folder, fmt.Sprintf("%s-%d.%s", kind, stamp, file.Ext()))
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := s.adapter.UploadObject(ctx, objectPath, contentType, bytes.NewReader(file.Data))
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("path", objectPath).Msg("image upload failed")
		return "", err
	}

	return resp.PublicURL, nil
}

func (s *clientCharacterService) removeKind(ctx context.Context, folder string, kind models.ImageKind) {
	objects, err := s.adapter.ListObjects(ctx, folder)
	if err != nil {
		s.logger.Warn().Err(err).Str("folder", folder).Msg("listing old images failed")
		return
	}

	prefix := string(kind) + "-"
	var stale []string
	for _, o := range objects {
		if strings.HasPrefix(o.Name, prefix) {
			stale = append(stale, path.Join(folder, o.Name))
		}
	}
	if len(stale) == 0 {
		return
	}

	if err = s.adapter.RemoveObjects(ctx, stale); err != nil {
		s.logger.Warn().Err(err).Strs("paths", stale).Msg("removing old images failed")
	}
}

func (s *clientCharacterService) DeleteImage(ctx context.Context, publicURL string) error {
	objectPath, ok := s.objectPathOf(publicURL)
	if !ok {
		return nil
	}

	if err := s.adapter.RemoveObjects(ctx, []string{objectPath}); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

// objectPathOf returns the bucket path behind a public URL: everything
// after "public/<bucket>/".
func (s *clientCharacterService) objectPathOf(publicURL string) (string, bool) {
	if publicURL == "" || strings.Contains(publicURL, placeholderMarker) {
		return "", false
	}

	marker := "public/" + s.bucket + "/"
	idx := strings.Index(publicURL, marker)
	if idx < 0 {
		return "", false
	}

	raw := publicURL[idx+len(marker):]
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	if raw == "" {
		return "", false
	}
	return raw, true
}

func (s *clientCharacterService) Save(ctx context.Context, character models.CharacterFields, stats models.StatsFields, id *int64) (int64, error) {
	resp, err := s.adapter.SaveCharacter(ctx, models.SaveRequest{ID: id, Character: character, Stats: stats})
	if err != nil {
		return 0, mapAdapterError(err)
	}
	return resp.ID, nil
}

// Delete clears the character folder and its gallery before removing the
// row. Any storage failure aborts the delete so no images are orphaned.
func (s *clientCharacterService) Delete(ctx context.Context, id int64, slug string) error {
	var paths []string
	for _, folder := range []string{slug, path.Join(slug, "gallery")} {
		objects, err := s.adapter.ListObjects(ctx, folder)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStorageCleanup, mapAdapterError(err))
		}
		for _, o := range objects {
			paths = append(paths, path.Join(folder, o.Name))
		}
	}

	if len(paths) > 0 {
		if err := s.adapter.RemoveObjects(ctx, paths); err != nil {
			return fmt.Errorf("%w: %w", ErrStorageCleanup, mapAdapterError(err))
		}
	}

	if err := s.adapter.DeleteCharacter(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	s.logger.Info().Int64("character_id", id).Str("slug", slug).Int("images", len(paths)).Msg("character deleted")
	return nil
}
