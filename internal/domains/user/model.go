package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents an account in the library system
type User struct {
	// Identity
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"`

	// Authentication
	PasswordHash string `db:"password_hash" json:"-"`

	// Profile
	DateOfBirth     time.Time `db:"date_of_birth" json:"date_of_birth"`
	ProfilePhotoURL *string   `db:"profile_photo_url" json:"profile_photo_url,omitempty"`

	// Authorization
	Role     string `db:"role" json:"role"`
	IsActive bool   `db:"is_active" json:"is_active"`

	// Activity
	LastLoginAt *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`

	// Timestamps
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Roles stored in the users.role column
const (
	RoleAdmin     = "admin"
	RoleLibrarian = "librarian"
	RoleMember    = "member"
)

// AllRoles returns all valid roles
func AllRoles() []string {
	return []string{RoleAdmin, RoleLibrarian, RoleMember}
}

// IsValidRole reports whether the value is a known role
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return true
	}
	return false
}

func (u *User) String() string {
	return fmt.Sprintf("User{ID: %s, Email: %s, Role: %s}", u.ID, u.Email, u.Role)
}
