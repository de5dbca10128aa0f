package service_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwadley/swapshop/internal/domain"
	"github.com/mwadley/swapshop/internal/service"
)

func TestUploadService_Save(t *testing.T) {
	dir := t.TempDir()
	uploads, err := service.NewUploadService(dir)
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}

	loc, err := uploads.Save("image/png", []byte("fake-png-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(loc, "/uploads/") || !strings.HasSuffix(loc, ".png") {
		t.Fatalf("unexpected location %q", loc)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(loc)))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "fake-png-bytes" {
		t.Fatal("stored bytes do not match upload")
	}
}

func TestUploadService_Save_UnsupportedType(t *testing.T) {
	uploads, err := service.NewUploadService(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}

	_, err = uploads.Save("application/pdf", []byte("%PDF-1.4"))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
