package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mwadley/swapshop/internal/domain"
	"github.com/mwadley/swapshop/internal/service"
)

// ListingHandler handles listing creation and the read-side views.
type ListingHandler struct {
	listings *service.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listings *service.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// HandleCreate creates a listing owned by the authenticated user.
// POST /api/listings
// Request:  {"name":"...","description":"...","imageLocation":"...","swapList":"..."}
// Response: {"id": 1}
func (h *ListingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req struct {
		Name          string `json:"name"`
		Description   string `json:"description"`
		ImageLocation string `json:"imageLocation"`
		SwapList      string `json:"swapList"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	id, err := h.listings.Create(r.Context(), user.ID, req.Name, req.Description, req.ImageLocation, req.SwapList)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create listing", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// HandleGet returns the full metadata view for one listing.
// GET /api/listings/{id}
func (h *ListingHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid listing id.")
		return
	}

	m, err := h.listings.GetMetadata(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid listing id.")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Listing not found.")
		case errors.Is(err, domain.ErrDanglingOwner):
			slog.Error("listing owner missing", "listing_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "The listing's owner record is missing.")
		default:
			slog.Error("get listing", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"listing": toMetadataDTO(m)})
}

// HandleList returns the public feed of all listings.
// GET /api/listings
func (h *ListingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.listings.All(r.Context())
	if err != nil {
		slog.Error("list listings", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"listings": toSummaryDTOs(summaries)})
}

// HandleSearch returns listings whose name contains the q parameter as a
// case-insensitive substring.
// GET /api/listings/search?q=term
func (h *ListingHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := h.listings.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("search listings", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"listings": toSummaryDTOs(results)})
}

// HandleMyListings returns the names of the authenticated user's
// listings.
// GET /api/my/listings
func (h *ListingHandler) HandleMyListings(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	names, err := h.listings.NamesByOwner(r.Context(), user.ID)
	if err != nil {
		slog.Error("list own listings", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"names": names})
}
