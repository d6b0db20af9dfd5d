// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/internal/validators"
	"github.com/MKhiriev/char-archive/models"
)

type storageService struct {
	objects store.ObjectStorage
	bucket  string
	maxSize int64

	logger *logger.Logger
}

// NewStorageService wraps the bucket with the upload rules of the archive:
// every object lives under a character folder named by its slug, only
// images are accepted, and uploads are capped at validators.MaxImageSize.
func NewStorageService(objects store.ObjectStorage, cfg config.Files, logger *logger.Logger) StorageService {
	bucket := cfg.Bucket
	if bucket == "" {
		bucket = config.DefaultBucket
	}
	return &storageService{
		objects: objects,
		bucket:  bucket,
		maxSize: validators.MaxImageSize,
		logger:  logger,
	}
}

func (s *storageService) Bucket() string {
	return s.bucket
}

// ListObjects lists the files directly inside folder.
func (s *storageService) ListObjects(ctx context.Context, folder string) ([]models.StorageObject, error) {
	if err := checkCharacterPath(folder); err != nil {
		return nil, err
	}

	objects, err := s.objects.List(ctx, folder)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("folder", folder).Msg("listing objects failed")
		return nil, fmt.Errorf("listing objects failed: %w", err)
	}
	if objects == nil {
		objects = []models.StorageObject{}
	}
	return objects, nil
}

// UploadObject stores body at objectPath and returns its public URL.
func (s *storageService) UploadObject(ctx context.Context, objectPath string, contentType string, body io.Reader) (models.UploadResponse, error) {
	log := logger.FromContext(ctx)

	if err := checkCharacterPath(objectPath); err != nil {
		return models.UploadResponse{}, err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return models.UploadResponse{}, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	data, err := io.ReadAll(io.LimitReader(body, s.maxSize+1))
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("reading upload body failed: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return models.UploadResponse{}, ErrImageTooLarge
	}
	if len(data) == 0 {
		return models.UploadResponse{}, fmt.Errorf("%w: empty upload", ErrInvalidDataProvided)
	}

	object, err := s.objects.Upload(ctx, objectPath, contentType, bytes.NewReader(data))
	if err != nil {
		log.Err(err).Str("path", objectPath).Msg("upload failed")
		return models.UploadResponse{}, fmt.Errorf("upload failed: %w", err)
	}

	log.Info().Str("path", object.Path).Int64("size", object.Size).Msg("object uploaded")
	return models.UploadResponse{Path: object.Path, PublicURL: s.objects.PublicURL(object.Path)}, nil
}

// RemoveObjects deletes every listed object. Missing objects are ignored.
func (s *storageService) RemoveObjects(ctx context.Context, objectPaths []string) error {
	for _, p := range objectPaths {
		if err := checkCharacterPath(p); err != nil {
			return err
		}
	}
	if len(objectPaths) == 0 {
		return nil
	}

	if err := s.objects.Remove(ctx, objectPaths...); err != nil {
		logger.FromContext(ctx).Err(err).Strs("paths", objectPaths).Msg("removing objects failed")
		return fmt.Errorf("removing objects failed: %w", err)
	}
	return nil
}

// OpenObject opens a stored object for the public download route.
func (s *storageService) OpenObject(ctx context.Context, objectPath string) (io.ReadCloser, models.StorageObject, error) {
	return s.objects.Open(ctx, objectPath)
}

// checkCharacterPath requires the first path segment to be a valid slug.
func checkCharacterPath(objectPath string) error {
	clean := path.Clean(strings.TrimSpace(objectPath))
	if clean != strings.TrimSuffix(objectPath, "/") || clean == "." {
		return fmt.Errorf("%w: %q", ErrInvalidObjectPath, objectPath)
	}
	slug, _, _ := strings.Cut(clean, "/")
	if err := validators.ValidateSlug(slug); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidObjectPath, err)
	}
	return nil
}
