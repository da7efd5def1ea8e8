package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for User data access operations
type Repository interface {
	// Create inserts a new user
	// Errors: ErrEmailAlreadyExists on unique violation
	Create(ctx context.Context, user *User) error

	// FindByID retrieves a user by ID
	// Errors: ErrUserNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail retrieves a user by email (login path)
	// Errors: ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update persists profile fields (email, date_of_birth, photo)
	Update(ctx context.Context, user *User) error

	// UpdatePassword replaces the stored password hash
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateLastLogin stamps the last successful login
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail checks registration uniqueness
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByEmailExcept checks uniqueness excluding one user,
	// used when a profile update changes the email
	ExistsByEmailExcept(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)

	// CountByRole returns the number of users per role (reporting views)
	CountByRole(ctx context.Context) (map[string]int64, error)
}
