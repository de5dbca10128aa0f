package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mwadley/swapshop/internal/domain"
)

func testUser(username, email string) *domain.User {
	return &domain.User{
		Username:     username,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		Forename:     "Test",
		Surname:      "User",
		Email:        email,
	}
}

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := testUser("alice", "alice@example.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be set after create")
	}
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("bob", "bob@example.com")); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	// Same username, different email.
	err := repo.Create(ctx, testUser("bob", "other@example.com"))
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("carol", "carol@example.com")); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	err := repo.Create(ctx, testUser("notcarol", "carol@example.com"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := testUser("dave", "dave@example.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByEmail(ctx, "dave@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, found.ID)
	}
	if found.Username != "dave" {
		t.Fatalf("expected username dave, got %q", found.Username)
	}
	if found.PasswordHash != user.PasswordHash {
		t.Fatal("expected stored password hash to round-trip")
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
