package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mwadley/swapshop/internal/domain"
	"github.com/mwadley/swapshop/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// MemoryPath is the storage target for an ephemeral in-memory database,
// discarded when the process exits.
const MemoryPath = ":memory:"

// DB wraps the SQLite connection and hands out the repositories built
// on it. Construct with New, then call Migrate before any other use.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for
// use. The returned handle is not ready until Migrate has been called.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// PRAGMA foreign_keys stays off: item.user_id is not checked against
	// the user table at insert time, and a dangling owner surfaces as
	// ErrDanglingOwner from GetMetadata instead of an insert failure.

	// A single connection serializes writes and keeps :memory: databases
	// visible across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies any unapplied schema migrations. It is idempotent and
// must complete before concurrent traffic begins.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Users returns the user repository backed by this database.
func (d *DB) Users() *UserRepository {
	return NewUserRepository(d)
}

// Listings returns the listing repository backed by this database.
func (d *DB) Listings() *ListingRepository {
	return NewListingRepository(d)
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// violation on the given column (e.g. "user.username").
func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

// storageErr marks an infrastructure failure so callers can tell it
// apart from validation, conflict, and not-found outcomes.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorage, op, err)
}
