package domain

import "context"

// NoSwapPlaceholder is shown in place of an empty swap list.
const NoSwapPlaceholder = "Nothing provided."

// Listing represents an item a user has put up for swapping.
// ImageLocation is a relative path to an externally managed image asset;
// the store never handles image bytes itself. SwapList may be empty.
type Listing struct {
	ID            int64
	OwnerID       int64
	Name          string
	Description   string
	ImageLocation string
	SwapList      string
}

// ListingMetadata is the display-ready projection of a single listing,
// with the owner's username resolved and an absent swap list replaced
// by NoSwapPlaceholder.
type ListingMetadata struct {
	ID            int64
	OwnerID       int64
	Name          string
	Description   string
	ImageLocation string
	SwapList      string
	OwnerUsername string
}

// ListingSummary is the public projection used for the marketplace feed.
// Owner identity and swap list are deliberately omitted; they are only
// meaningful to authenticated viewers.
type ListingSummary struct {
	ID            int64
	Name          string
	Description   string
	ImageLocation string
}

// ListingRepository defines persistence operations for listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	GetMetadata(ctx context.Context, id int64) (*ListingMetadata, error)
	NamesByOwner(ctx context.Context, ownerID int64) ([]string, error)
	ListAll(ctx context.Context) ([]ListingSummary, error)
	SearchByName(ctx context.Context, term string) ([]ListingSummary, error)
}
