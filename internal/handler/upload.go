package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mwadley/swapshop/internal/domain"
	"github.com/mwadley/swapshop/internal/service"
)

// maxUploadBytes caps listing image uploads at 10MB.
const maxUploadBytes = 10 << 20

// UploadHandler accepts listing image uploads and returns the stored
// location for use in a subsequent listing creation.
type UploadHandler struct {
	uploads *service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// HandleUpload processes a multipart image upload.
// POST /api/uploads (form field "image")
// Response: {"location": "/uploads/<name>"}
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Upload too large or malformed.")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read upload.")
		return
	}

	// Sniff the content type rather than trusting the client header.
	location, err := h.uploads.Save(http.DetectContentType(data), data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnsupportedMediaType, "Only PNG, JPEG, GIF, and WebP images are accepted.")
			return
		}
		slog.Error("save upload", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"location": location})
}
