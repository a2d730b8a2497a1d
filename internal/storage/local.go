// Package storage persists uploaded media files to a served local directory.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"pulse/internal/models"
	"pulse/internal/observability"

	"github.com/google/uuid"
)

// MaxUploadSize is the per-file upload limit.
const MaxUploadSize = 50 * 1024 * 1024 // 50MB

var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".gif":  {},
	".mp4":  {},
	".mov":  {},
	".avi":  {},
	".webm": {},
}

// ErrUnsupportedMedia is returned when the uploaded file is not in the
// extension/MIME allow-list.
var ErrUnsupportedMedia = fmt.Errorf("only images and videos are allowed")

// ErrFileTooLarge is returned when the uploaded file exceeds MaxUploadSize.
var ErrFileTooLarge = fmt.Errorf("file exceeds the %dMB upload limit", MaxUploadSize/(1024*1024))

// LocalStore saves media files under a base directory and exposes them by
// URL path. The directory is expected to be served statically.
type LocalStore struct {
	baseDir string
	urlPath string
}

// NewLocalStore creates the base directory if needed and returns a store
// whose saved files are referenced as urlPath/<filename>.
func NewLocalStore(baseDir, urlPath string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir, urlPath: strings.TrimSuffix(urlPath, "/")}, nil
}

// Save validates and persists an uploaded file, returning its public URL
// path and the derived media type.
func (s *LocalStore) Save(file *multipart.FileHeader) (string, models.MediaType, error) {
	if file.Size > MaxUploadSize {
		observability.MediaUploadRejections.WithLabelValues("too_large").Inc()
		return "", "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		observability.MediaUploadRejections.WithLabelValues("extension").Inc()
		return "", "", ErrUnsupportedMedia
	}

	mediaType := MediaTypeFor(file.Header.Get("Content-Type"), ext)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() { _ = src.Close() }()

	name := uuid.New().String() + ext
	fullPath := filepath.Join(s.baseDir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(fullPath)
		return "", "", fmt.Errorf("failed to write media file: %w", err)
	}

	observability.MediaUploads.WithLabelValues(string(mediaType)).Inc()
	return s.urlPath + "/" + name, mediaType, nil
}

// MediaTypeFor derives the media kind from the declared content type,
// falling back to the file extension.
func MediaTypeFor(contentType, ext string) models.MediaType {
	if strings.HasPrefix(contentType, "video") {
		return models.MediaTypeVideo
	}
	if strings.HasPrefix(contentType, "image") {
		return models.MediaTypeImage
	}
	switch ext {
	case ".mp4", ".mov", ".avi", ".webm":
		return models.MediaTypeVideo
	default:
		return models.MediaTypeImage
	}
}
