package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mwadley/swapshop/internal/domain"
)

// ListingRepository implements domain.ListingRepository using SQLite.
type ListingRepository struct {
	db *sql.DB
}

// NewListingRepository creates a new SQLite-backed ListingRepository.
func NewListingRepository(db *DB) *ListingRepository {
	return &ListingRepository{db: db.SqlDB}
}

// Create inserts a new item row and sets listing.ID. The owner id is
// stored as given; it is not checked against the user table.
func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	// An empty swap list is stored as NULL so reads substitute the
	// placeholder text.
	swap := sql.NullString{String: listing.SwapList, Valid: listing.SwapList != ""}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO item (user_id, item_name, item_description, item_img_loc, swap)
		 VALUES (?, ?, ?, ?, ?)`,
		listing.OwnerID, listing.Name, listing.Description, listing.ImageLocation, swap,
	)
	if err != nil {
		return storageErr("insert item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("get last insert id", err)
	}

	listing.ID = id
	return nil
}

// GetMetadata returns the display projection for one listing, resolving
// the owner's username from the user table. A listing whose owner row is
// missing yields ErrDanglingOwner rather than a blank username.
func (r *ListingRepository) GetMetadata(ctx context.Context, id int64) (*domain.ListingMetadata, error) {
	m := &domain.ListingMetadata{}
	var swap, owner sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT i.item_id, i.user_id, i.item_name, i.item_description, i.item_img_loc, i.swap, u.username
		 FROM item i
		 LEFT JOIN user u ON u.user_id = i.user_id
		 WHERE i.item_id = ?`, id,
	).Scan(&m.ID, &m.OwnerID, &m.Name, &m.Description, &m.ImageLocation, &swap, &owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("query item metadata", err)
	}

	if !owner.Valid {
		return nil, fmt.Errorf("%w: listing %d references user %d", domain.ErrDanglingOwner, m.ID, m.OwnerID)
	}
	m.OwnerUsername = owner.String

	m.SwapList = domain.NoSwapPlaceholder
	if swap.Valid {
		m.SwapList = swap.String
	}

	return m, nil
}

// NamesByOwner returns the names of the owner's listings in creation
// order. An owner with no listings gets an empty slice.
func (r *ListingRepository) NamesByOwner(ctx context.Context, ownerID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT item_name FROM item WHERE user_id = ? ORDER BY item_id", ownerID)
	if err != nil {
		return nil, storageErr("query item names", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageErr("scan item name", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ListAll returns the public summary of every listing in creation order.
func (r *ListingRepository) ListAll(ctx context.Context) ([]domain.ListingSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT item_id, item_name, item_description, item_img_loc FROM item ORDER BY item_id")
	if err != nil {
		return nil, storageErr("query items", err)
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// SearchByName returns summaries of listings whose name contains term as
// a case-insensitive substring. An empty term matches everything.
func (r *ListingRepository) SearchByName(ctx context.Context, term string) ([]domain.ListingSummary, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT item_id, item_name, item_description, item_img_loc
		 FROM item WHERE LOWER(item_name) LIKE ? ESCAPE '\' ORDER BY item_id`, pattern)
	if err != nil {
		return nil, storageErr("search items", err)
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]domain.ListingSummary, error) {
	summaries := []domain.ListingSummary{}
	for rows.Next() {
		var s domain.ListingSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.ImageLocation); err != nil {
			return nil, storageErr("scan item", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so a search term is always
// matched literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
