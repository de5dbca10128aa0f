package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mwadley/swapshop/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

// Create inserts a new user row and sets user.ID. Username and email
// uniqueness is enforced by the schema; a concurrent duplicate insert
// loses with a conflict error rather than producing a second row.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO user (username, password_hash, forename, surname, email)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Username, user.PasswordHash, user.Forename, user.Surname, user.Email,
	)
	if err != nil {
		if isUniqueViolation(err, "user.username") {
			return domain.ErrDuplicateUsername
		}
		if isUniqueViolation(err, "user.email") {
			return domain.ErrDuplicateEmail
		}
		return storageErr("insert user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("get last insert id", err)
	}

	user.ID = id
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, "user_id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column string, value any) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, username, password_hash, forename, surname, email
		 FROM user WHERE `+column+` = ?`, value,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Forename, &user.Surname, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("query user by "+column, err)
	}
	return user, nil
}
