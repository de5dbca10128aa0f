package service

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mwadley/swapshop/internal/domain"
)

// imageExtensions maps the accepted upload content types to stored file
// extensions.
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadService stores listing images on disk and hands back the
// relative location string that listings persist. The store layer itself
// never sees image bytes.
type UploadService struct {
	dir string
}

// NewUploadService creates the upload directory if needed and returns a
// service writing into it.
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// Save writes the image bytes under a random name and returns its
// location path for use as a listing's image location.
func (s *UploadService) Save(contentType string, data []byte) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", domain.ErrInvalidInput, contentType)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write image file: %v", domain.ErrStorage, err)
	}

	return path.Join("/uploads", name), nil
}

// Dir returns the directory uploads are written to.
func (s *UploadService) Dir() string {
	return s.dir
}
