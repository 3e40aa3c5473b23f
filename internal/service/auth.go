package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/msomdec/postboard/internal/domain"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 100
)

var (
	// One "@" and at least one "." after it.
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

	errPasswordTooLong = fmt.Errorf("%w: password must be at most 72 bytes", domain.ErrInvalidInput)
)

// fallbackDummyHash is a well-formed bcrypt digest used when the hasher
// cannot produce one at startup.
const fallbackDummyHash = "$2a$10$XajjQvNhvvRt5GSeFk1xFeyqRrsxkhBkUiQeg0dt.wU1qD4aFDcga"

// AuthService handles user registration, login and role assignment.
type AuthService struct {
	users  domain.UserRepository
	hasher PasswordHasher
	// dummyHash is compared against when the username is unknown so that
	// both failure paths cost one hash verification.
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, hasher PasswordHasher) *AuthService {
	dummy, err := hasher.Hash("postboard-unknown-user")
	if err != nil {
		slog.Warn("compute dummy password hash, using fallback digest", "error", err)
		dummy = fallbackDummyHash
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		dummyHash: dummy,
	}
}

// Register validates the input and creates a reader account. Uniqueness of
// username and email is enforced by the store's atomic insert.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := validateRegistration(username, email, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleReader,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns the identity to embed in a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Identity, error) {
	if username == "" || password == "" {
		return domain.Identity{}, fmt.Errorf("%w: username and password are required", domain.ErrMissingField)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return domain.Identity{}, domain.ErrInvalidCredentials
		}
		return domain.Identity{}, fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return user.Identity(), nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// AssignRole changes the stored role of a user. Tokens issued before the
// change keep their old role claim until they expire.
func (s *AuthService) AssignRole(ctx context.Context, userID int64, role string) (*domain.User, error) {
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateRole(ctx, userID, r); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return user, nil
}

// AssignRoleByUsername is AssignRole keyed by username.
func (s *AuthService) AssignRoleByUsername(ctx context.Context, username, role string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return s.AssignRole(ctx, user.ID, role)
}

func validateRegistration(username, email, password string) error {
	required := []struct {
		name  string
		value string
	}{
		{"username", username},
		{"email", email},
		{"password", password},
	}
	for _, f := range required {
		if err := validation.Validate(f.value, validation.Required); err != nil {
			return fmt.Errorf("%w: %s", domain.ErrMissingField, f.name)
		}
	}

	if err := validation.Validate(email,
		validation.Length(0, maxEmailLength),
		validation.Match(emailPattern),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidEmail, err)
	}

	if err := validation.Validate(username,
		validation.Length(0, maxUsernameLength),
		validation.Match(usernamePattern),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidUsername, err)
	}

	return nil
}
