package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mwadley/swapshop/internal/domain"
)

// ListingService handles listing creation and the read-side projections
// consumed by the presentation layer.
type ListingService struct {
	listings domain.ListingRepository
}

// NewListingService creates a new ListingService.
func NewListingService(listings domain.ListingRepository) *ListingService {
	return &ListingService{listings: listings}
}

// Create validates and stores a new listing, returning its assigned id.
// The owner id is not checked for existence; callers pass the id of an
// authenticated user.
func (s *ListingService) Create(ctx context.Context, ownerID int64, name, description, imageLocation, swapList string) (int64, error) {
	if ownerID <= 0 {
		return 0, fmt.Errorf("%w: owner id must be a positive integer", domain.ErrInvalidInput)
	}
	if err := validateRequired(name, "name", 50); err != nil {
		return 0, err
	}
	if err := validateRequired(description, "description", 250); err != nil {
		return 0, err
	}
	if err := validateRequired(imageLocation, "image location", 50); err != nil {
		return 0, err
	}
	// The swap list is optional.
	if utf8.RuneCountInString(swapList) > 500 {
		return 0, fmt.Errorf("%w: swap list must be at most 500 characters", domain.ErrInvalidInput)
	}

	listing := &domain.Listing{
		OwnerID:       ownerID,
		Name:          name,
		Description:   description,
		ImageLocation: imageLocation,
		SwapList:      swapList,
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return 0, err
	}

	return listing.ID, nil
}

// GetMetadata returns the display projection for one listing. A listing
// with no swap list carries domain.NoSwapPlaceholder; a listing whose
// owner row is missing yields ErrDanglingOwner.
func (s *ListingService) GetMetadata(ctx context.Context, id int64) (*domain.ListingMetadata, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: listing id must be a positive integer", domain.ErrInvalidInput)
	}
	return s.listings.GetMetadata(ctx, id)
}

// NamesByOwner returns the names of the owner's listings in creation
// order. Zero listings is an empty slice, not an error.
func (s *ListingService) NamesByOwner(ctx context.Context, ownerID int64) ([]string, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner id must be a positive integer", domain.ErrInvalidInput)
	}
	return s.listings.NamesByOwner(ctx, ownerID)
}

// All returns the public summary of every listing. An empty marketplace
// is an empty slice, not an error.
func (s *ListingService) All(ctx context.Context) ([]domain.ListingSummary, error) {
	return s.listings.ListAll(ctx)
}

// Search returns summaries of listings whose name contains term as a
// case-insensitive substring. An empty term matches everything.
func (s *ListingService) Search(ctx context.Context, term string) ([]domain.ListingSummary, error) {
	return s.listings.SearchByName(ctx, strings.TrimSpace(term))
}
