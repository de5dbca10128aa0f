package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mwadley/swapshop/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration, credential verification, and
// session token operations.
type AccountService struct {
	users      domain.UserRepository
	jwtSecret  []byte
	bcryptCost int
	tokenTTL   time.Duration
}

// NewAccountService creates a new AccountService. bcryptCost is the
// hashing work factor applied at registration.
func NewAccountService(users domain.UserRepository, jwtSecret string, bcryptCost int, tokenTTL time.Duration) *AccountService {
	return &AccountService{
		users:      users,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
		tokenTTL:   tokenTTL,
	}
}

// Register creates a new account after validating inputs. Username and
// email are globally unique; a duplicate surfaces as ErrDuplicateUsername
// or ErrDuplicateEmail even under concurrent registration.
func (s *AccountService) Register(ctx context.Context, username, password, forename, surname, email string) (*domain.User, error) {
	if err := validateCredential(username, "username"); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(username) > 32 {
		return nil, fmt.Errorf("%w: username must be at most 32 characters", domain.ErrInvalidInput)
	}
	if err := validateCredential(password, "password"); err != nil {
		return nil, err
	}
	// bcrypt rejects inputs over 72 bytes.
	if len(password) > 72 {
		return nil, fmt.Errorf("%w: password must be at most 72 bytes", domain.ErrInvalidInput)
	}
	if err := validateRequired(forename, "forename", 32); err != nil {
		return nil, err
	}
	if err := validateRequired(surname, "surname", 32); err != nil {
		return nil, err
	}
	if err := validateRequired(email, "email", 50); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Forename:     forename,
		Surname:      surname,
		Email:        email,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the email/password pair and returns a signed session
// token. An unknown email yields ErrNotFound; a wrong password yields
// ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	// bcrypt's comparison is constant-time relative to the hash.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: wrong password for %s", domain.ErrInvalidCredentials, email)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", fmt.Errorf("generate jwt: %w", err)
	}

	return token, nil
}

// ValidateToken parses and validates a session token string and returns
// the user ID from the sub claim.
func (s *AccountService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidCredentials
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, domain.ErrInvalidCredentials
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidCredentials
	}

	return userID, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AccountService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetUserData returns the full user record for an email, including the
// password hash. For internal use by collaborators that have already
// authenticated the email; the hash must never be exposed outward.
func (s *AccountService) GetUserData(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *AccountService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// validateCredential checks the rules shared by username and password:
// non-empty and no whitespace.
func validateCredential(value, field string) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, field)
	}
	if strings.ContainsFunc(value, unicode.IsSpace) {
		return fmt.Errorf("%w: %s must not contain whitespace", domain.ErrInvalidInput, field)
	}
	return nil
}

func validateRequired(value, field string, maxLen int) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%w: %s must be at most %d characters", domain.ErrInvalidInput, field, maxLen)
	}
	return nil
}
