package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Email:       "member@example.com",
		Password:    "longenough",
		DateOfBirth: "1990-06-15",
	}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr bool
	}{
		{name: "valid request", mutate: func(r *RegisterRequest) {}, wantErr: false},
		{name: "invalid email", mutate: func(r *RegisterRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "missing email", mutate: func(r *RegisterRequest) { r.Email = "" }, wantErr: true},
		{name: "short password", mutate: func(r *RegisterRequest) { r.Password = "short" }, wantErr: true},
		{name: "bad date format", mutate: func(r *RegisterRequest) { r.DateOfBirth = "15/06/1990" }, wantErr: true},
		{
			name: "future date of birth",
			mutate: func(r *RegisterRequest) {
				r.DateOfBirth = time.Now().AddDate(1, 0, 0).Format(DateOfBirthLayout)
			},
			wantErr: true,
		},
		{
			name: "invalid photo url",
			mutate: func(r *RegisterRequest) {
				bad := "::not a url::"
				r.ProfilePhotoURL = &bad
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	t.Run("all nil fields pass", func(t *testing.T) {
		assert.NoError(t, UpdateProfileRequest{}.Validate())
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		bad := "nope"
		assert.Error(t, UpdateProfileRequest{Email: &bad}.Validate())
	})

	t.Run("empty photo url clears the field", func(t *testing.T) {
		empty := ""
		assert.NoError(t, UpdateProfileRequest{ProfilePhotoURL: &empty}.Validate())
	})
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleLibrarian))
	assert.True(t, IsValidRole(RoleMember))
	assert.False(t, IsValidRole("superuser"))
	assert.False(t, IsValidRole(""))
}

func TestUser_ToResponse_HidesCredentials(t *testing.T) {
	u := User{
		Email:        "x@example.com",
		PasswordHash: "$2a$12$secret",
		DateOfBirth:  time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Role:         RoleMember,
	}

	resp := u.ToResponse()
	assert.Equal(t, "1990-06-15", resp.DateOfBirth)
	assert.Equal(t, RoleMember, resp.Role)
}
