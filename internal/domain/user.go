package domain

import "context"

// User represents a registered account. PasswordHash holds the bcrypt
// hash of the password; it must never leave the service layer.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Forename     string
	Surname      string
	Email        string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
