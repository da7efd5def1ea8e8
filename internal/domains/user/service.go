package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the User domain
type Service interface {
	// Register creates a member account
	// Errors: ErrEmailAlreadyExists, validation error
	Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error)

	// Login authenticates and returns a token pair
	// Errors: ErrInvalidCredentials, ErrUserInactive
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// RefreshToken exchanges a refresh token for a new access token
	// Errors: ErrInvalidToken, ErrUserNotFound, ErrUserInactive
	RefreshToken(ctx context.Context, req *RefreshRequest) (*TokenResponse, error)

	// GetProfile retrieves the authenticated user's profile
	GetProfile(ctx context.Context, id uuid.UUID) (*UserResponse, error)

	// UpdateProfile updates profile fields. An email change re-checks
	// uniqueness against everyone but the caller.
	// Errors: ErrEmailAlreadyExists, validation error
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error)

	// ChangePassword verifies the current password then replaces it
	// Errors: ErrWrongPassword, validation error
	ChangePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) error

	// CountByRole returns the number of users per role (admin reporting)
	CountByRole(ctx context.Context) (map[string]int64, error)
}
