// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path"
	"strings"
	"time"
)

// ImageKind selects the naming and replacement rules of an upload.
type ImageKind string

const (
	// ImageMain and ImageIcon are singleton slots: uploading replaces
	// every earlier object with the same prefix.
	ImageMain ImageKind = "main"
	ImageIcon ImageKind = "icon"

	// ImageGallery accumulates; nothing is ever replaced.
	ImageGallery ImageKind = "gallery"
)

// Valid reports whether k is a known image kind.
func (k ImageKind) Valid() bool {
	return k == ImageMain || k == ImageIcon || k == ImageGallery
}

// WarningLabel names the slot in user-facing upload warnings.
func (k ImageKind) WarningLabel() string {
	switch k {
	case ImageMain:
		return "Main Image"
	case ImageIcon:
		return "Icon"
	default:
		return "Gallery Image"
	}
}

// ImageFile is an image staged on the client, not yet uploaded.
type ImageFile struct {
	// Name is the original file name including its extension.
	Name        string
	ContentType string
	Data        []byte
}

// Ext returns the text after the last dot of the file name, or the whole
// name when it has no dot.
func (f ImageFile) Ext() string {
	idx := strings.LastIndex(f.Name, ".")
	if idx < 0 {
		return f.Name
	}
	return f.Name[idx+1:]
}

// BaseName returns the file name without directory and extension.
func (f ImageFile) BaseName() string {
	base := path.Base(strings.ReplaceAll(f.Name, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// StorageObject describes one stored file of the bucket.
type StorageObject struct {
	// Name is the file name within its folder.
	Name string `json:"name"`

	// Path is the full object path relative to the bucket root.
	Path string `json:"path"`

	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UploadResponse is returned after a successful object upload.
type UploadResponse struct {
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
}

// RemoveObjectsRequest is the body of DELETE /api/storage/objects.
type RemoveObjectsRequest struct {
	Paths []string `json:"paths"`
}

// ListObjectsResponse is returned by GET /api/storage/objects.
type ListObjectsResponse struct {
	Objects []StorageObject `json:"objects"`
}
