package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mwadley/swapshop/internal/domain"
	"github.com/mwadley/swapshop/internal/repository/sqlite"
	"github.com/mwadley/swapshop/internal/service"
)

func newTestListingService(t *testing.T) (*service.ListingService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewListingService(db.Listings()), db
}

func registerOwner(t *testing.T, db *sqlite.DB, username string) int64 {
	t.Helper()
	user := &domain.User{
		Username:     username,
		PasswordHash: "hash",
		Forename:     "F",
		Surname:      "S",
		Email:        username + "@example.com",
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	return user.ID
}

func TestListingService_CreateAndGetMetadata(t *testing.T) {
	listings, db := newTestListingService(t)
	ctx := context.Background()
	ownerID := registerOwner(t, db, "seller")

	id, err := listings.Create(ctx, ownerID, "Lamp", "A lamp", "/img/lamp.png", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a new numeric id")
	}

	m, err := listings.GetMetadata(ctx, id)
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if m.Name != "Lamp" || m.Description != "A lamp" || m.ImageLocation != "/img/lamp.png" {
		t.Fatalf("fields not preserved: %+v", m)
	}
	if m.SwapList != domain.NoSwapPlaceholder {
		t.Fatalf("expected placeholder for empty swap list, got %q", m.SwapList)
	}
	if m.OwnerID != ownerID || m.OwnerUsername != "seller" {
		t.Fatalf("owner not resolved: %+v", m)
	}
}

func TestListingService_Create_Validation(t *testing.T) {
	listings, db := newTestListingService(t)
	ctx := context.Background()
	ownerID := registerOwner(t, db, "validator")

	tests := []struct {
		name    string
		ownerID int64
		item    string
		desc    string
		img     string
		swap    string
	}{
		{"zero owner id", 0, "Lamp", "d", "/img/x.png", ""},
		{"negative owner id", -3, "Lamp", "d", "/img/x.png", ""},
		{"empty name", ownerID, "", "d", "/img/x.png", ""},
		{"name too long", ownerID, strings.Repeat("n", 51), "d", "/img/x.png", ""},
		{"empty description", ownerID, "Lamp", "", "/img/x.png", ""},
		{"description too long", ownerID, "Lamp", strings.Repeat("d", 251), "/img/x.png", ""},
		{"empty image location", ownerID, "Lamp", "d", "", ""},
		{"swap list too long", ownerID, "Lamp", "d", "/img/x.png", strings.Repeat("s", 501)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := listings.Create(ctx, tc.ownerID, tc.item, tc.desc, tc.img, tc.swap)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestListingService_Create_DoesNotCheckOwnerExists(t *testing.T) {
	listings, _ := newTestListingService(t)

	// Owner existence is the caller's responsibility.
	id, err := listings.Create(context.Background(), 12345, "Lamp", "d", "/img/x.png", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a new id")
	}
}

func TestListingService_NamesByOwner_Empty(t *testing.T) {
	listings, db := newTestListingService(t)
	ownerID := registerOwner(t, db, "empty")

	names, err := listings.NamesByOwner(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("NamesByOwner: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected empty slice, got %v", names)
	}
}

func TestListingService_NamesByOwner_InvalidID(t *testing.T) {
	listings, _ := newTestListingService(t)

	for _, id := range []int64{0, -1} {
		_, err := listings.NamesByOwner(context.Background(), id)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("owner id %d: expected ErrInvalidInput, got %v", id, err)
		}
	}
}

func TestListingService_All_EmptyMarketplace(t *testing.T) {
	listings, _ := newTestListingService(t)

	all, err := listings.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty slice, got %v", all)
	}
}

func TestListingService_Search(t *testing.T) {
	listings, db := newTestListingService(t)
	ctx := context.Background()
	ownerID := registerOwner(t, db, "searcher")

	for _, name := range []string{"Desk Lamp", "Chair"} {
		if _, err := listings.Create(ctx, ownerID, name, "d", "/img/x.png", ""); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	results, err := listings.Search(ctx, "lamp")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Desk Lamp" {
		t.Fatalf("expected only Desk Lamp, got %v", results)
	}

	// An empty term is a no-op filter.
	results, err = listings.Search(ctx, "  ")
	if err != nil {
		t.Fatalf("Search empty: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected all listings for empty term, got %v", results)
	}
}
