package tui

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/char-archive/models"
)

// loadImageFile reads an image staged for upload. The content type comes
// from the extension, falling back to sniffing the first bytes.
func loadImageFile(path string) (*models.ImageFile, error) {
	path = expandHome(strings.TrimSpace(path))
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", filepath.Base(path), err)
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}

	return &models.ImageFile{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// loadImageFiles reads every comma-separated path of list in order.
func loadImageFiles(list string) ([]models.ImageFile, error) {
	var files []models.ImageFile
	for _, path := range splitComma(list) {
		f, err := loadImageFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, *f)
	}
	return files, nil
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
