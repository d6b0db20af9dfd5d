// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/models"
)

// PublicObjectPrefix is the URL path under which bucket objects are served.
// Clients strip everything up to "public/<bucket>/" to recover the object path.
const PublicObjectPrefix = "/storage/v1/object/public/"

// fileObjectStorage keeps bucket objects as plain files below root.
// Object paths use forward slashes and map one to one onto the directory tree.
type fileObjectStorage struct {
	root          string
	bucket        string
	publicBaseURL string
	logger        *logger.Logger
}

// NewFileObjectStorage constructs an [ObjectStorage] rooted at cfg.BucketDir.
// The directory is created when missing.
func NewFileObjectStorage(cfg config.Files, logger *logger.Logger) (ObjectStorage, error) {
	logger.Debug().Str("dir", cfg.BucketDir).Str("bucket", cfg.Bucket).Msg("creating file object storage")

	if err := os.MkdirAll(cfg.BucketDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating bucket dir: %w", err)
	}

	return &fileObjectStorage{
		root:          cfg.BucketDir,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

func (s *fileObjectStorage) List(ctx context.Context, folder string) ([]models.StorageObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	folder = strings.Trim(folder, "/")
	dir := s.root
	if folder != "" {
		clean, err := cleanObjectPath(folder)
		if err != nil {
			return nil, err
		}
		folder = clean
		dir = filepath.Join(s.root, filepath.FromSlash(clean))
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.StorageObject{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileObjectStorage.List").Str("folder", folder).Msg("failed to read folder")
		return nil, err
	}

	objects := make([]models.StorageObject, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, objectFromInfo(path.Join(folder, entry.Name()), info))
	}

	return objects, nil
}

func (s *fileObjectStorage) Upload(ctx context.Context, objectPath string, contentType string, body io.Reader) (models.StorageObject, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return models.StorageObject{}, err
	}

	clean, err := cleanObjectPath(objectPath)
	if err != nil {
		return models.StorageObject{}, err
	}
	target := filepath.Join(s.root, filepath.FromSlash(clean))

	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return models.StorageObject{}, fmt.Errorf("error creating object folder: %w", err)
	}

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return models.StorageObject{}, fmt.Errorf("%w: %s", ErrObjectExists, clean)
	}
	if err != nil {
		return models.StorageObject{}, fmt.Errorf("error creating object: %w", err)
	}

	size, copyErr := io.Copy(file, body)
	closeErr := file.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		log.Err(err).Str("func", "*fileObjectStorage.Upload").Str("path", clean).Msg("failed to write object")
		_ = os.Remove(target)
		return models.StorageObject{}, fmt.Errorf("error writing object: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return models.StorageObject{}, err
	}
	object := objectFromInfo(clean, info)
	object.Size = size
	if contentType != "" {
		object.ContentType = contentType
	}

	log.Debug().Str("path", clean).Int64("size", size).Msg("object uploaded")
	return object, nil
}

func (s *fileObjectStorage) Remove(ctx context.Context, objectPaths ...string) error {
	log := logger.FromContext(ctx)

	var errs []error
	for _, objectPath := range objectPaths {
		if err := ctx.Err(); err != nil {
			return err
		}

		clean, err := cleanObjectPath(objectPath)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", objectPath, err))
			continue
		}

		err = os.Remove(filepath.Join(s.root, filepath.FromSlash(clean)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Err(err).Str("func", "*fileObjectStorage.Remove").Str("path", clean).Msg("failed to remove object")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *fileObjectStorage) Open(ctx context.Context, objectPath string) (io.ReadCloser, models.StorageObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.StorageObject{}, err
	}

	clean, err := cleanObjectPath(objectPath)
	if err != nil {
		return nil, models.StorageObject{}, err
	}

	file, err := os.Open(filepath.Join(s.root, filepath.FromSlash(clean)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, models.StorageObject{}, ErrObjectNotFound
	}
	if err != nil {
		return nil, models.StorageObject{}, err
	}

	info, err := file.Stat()
	if err != nil || !info.Mode().IsRegular() {
		_ = file.Close()
		return nil, models.StorageObject{}, ErrObjectNotFound
	}

	return file, objectFromInfo(clean, info), nil
}

func (s *fileObjectStorage) PublicURL(objectPath string) string {
	segments := strings.Split(strings.Trim(objectPath, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return s.publicBaseURL + PublicObjectPrefix + url.PathEscape(s.bucket) + "/" + strings.Join(segments, "/")
}

// cleanObjectPath rejects paths that are empty or climb out of the bucket.
func cleanObjectPath(objectPath string) (string, error) {
	if objectPath == "" || strings.ContainsRune(objectPath, '\\') || strings.ContainsRune(objectPath, 0) {
		return "", ErrInvalidObjectPath
	}
	if strings.HasPrefix(objectPath, "/") {
		return "", ErrInvalidObjectPath
	}

	clean := path.Clean(objectPath)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidObjectPath
	}
	return clean, nil
}

func objectFromInfo(objectPath string, info fs.FileInfo) models.StorageObject {
	contentType := mime.TypeByExtension(path.Ext(objectPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return models.StorageObject{
		Name:        info.Name(),
		Path:        objectPath,
		Size:        info.Size(),
		ContentType: contentType,
		UpdatedAt:   info.ModTime(),
	}
}
