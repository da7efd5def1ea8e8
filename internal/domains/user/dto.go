package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// DateOfBirthLayout is the wire format for the date_of_birth field
const DateOfBirthLayout = "2006-01-02"

// RegisterRequest - POST /v1/auth/register
type RegisterRequest struct {
	Email           string  `json:"email" binding:"required"`
	Password        string  `json:"password" binding:"required"`
	DateOfBirth     string  `json:"date_of_birth" binding:"required"`
	ProfilePhotoURL *string `json:"profile_photo_url,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 72).Error("password must be at least 8 characters"),
		),
		validation.Field(&r.DateOfBirth,
			validation.Required.Error("date of birth is required"),
			validation.By(validateDateOfBirth),
		),
		validation.Field(&r.ProfilePhotoURL,
			validation.When(r.ProfilePhotoURL != nil, is.URL.Error("profile photo must be a valid URL")),
		),
	)
}

// validateDateOfBirth accepts YYYY-MM-DD dates in the past
func validateDateOfBirth(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	dob, err := time.Parse(DateOfBirthLayout, s)
	if err != nil {
		return validation.NewError("validation_date", "date of birth must be in YYYY-MM-DD format")
	}
	if dob.After(time.Now()) {
		return validation.NewError("validation_date", "date of birth cannot be in the future")
	}
	return nil
}

// LoginRequest - POST /v1/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// RefreshRequest - POST /v1/auth/refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required.Error("refresh token is required")),
	)
}

// UpdateProfileRequest - PUT /v1/users/me
type UpdateProfileRequest struct {
	Email           *string `json:"email,omitempty"`
	DateOfBirth     *string `json:"date_of_birth,omitempty"`
	ProfilePhotoURL *string `json:"profile_photo_url,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.When(r.Email != nil, is.Email.Error("email must be a valid email address")),
		),
		validation.Field(&r.DateOfBirth,
			validation.When(r.DateOfBirth != nil, validation.By(validateDateOfBirth)),
		),
		validation.Field(&r.ProfilePhotoURL,
			validation.When(r.ProfilePhotoURL != nil && *r.ProfilePhotoURL != "",
				is.URL.Error("profile photo must be a valid URL")),
		),
	)
}

// ChangePasswordRequest - POST /v1/users/change-password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required.Error("current password is required")),
		validation.Field(&r.NewPassword,
			validation.Required.Error("new password is required"),
			validation.Length(8, 72).Error("new password must be at least 8 characters"),
		),
	)
}

// UserResponse - safe projection of a User, no credentials
type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	DateOfBirth     string     `json:"date_of_birth"`
	ProfilePhotoURL *string    `json:"profile_photo_url,omitempty"`
	Role            string     `json:"role"`
	IsActive        bool       `json:"is_active"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// LoginResponse - token pair plus the authenticated user
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}

// TokenResponse - POST /v1/auth/refresh result
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		DateOfBirth:     u.DateOfBirth.Format(DateOfBirthLayout),
		ProfilePhotoURL: u.ProfilePhotoURL,
		Role:            u.Role,
		IsActive:        u.IsActive,
		LastLoginAt:     u.LastLoginAt,
		CreatedAt:       u.CreatedAt,
	}
}
