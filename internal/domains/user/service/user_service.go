package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"library-catalog-backend/internal/domains/user"
	"library-catalog-backend/pkg/jwt"
	"library-catalog-backend/pkg/logger"
)

// bcryptCost trades hash time against brute-force resistance
const bcryptCost = 12

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService creates the service instance
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{repo: repo, jwtManager: jwtManager}
}

// ════════════════════════════════════════════════════════════════
// AUTHENTICATION
// ════════════════════════════════════════════════════════════════

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Validate guarantees the layout parses
	dob, err := time.Parse(user.DateOfBirthLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("parse date of birth: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		ID:              uuid.New(),
		Email:           req.Email,
		PasswordHash:    string(passwordHash),
		DateOfBirth:     dob,
		ProfilePhotoURL: req.ProfilePhotoURL,
		Role:            user.RoleMember,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": newUser.ID.String(),
	})

	return newUser.ToResponse(), nil
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Never reveal whether the email exists
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.repo.UpdateLastLogin(ctx, u.ID); err != nil {
		logger.Warn("failed to stamp last login", map[string]interface{}{
			"user_id": u.ID.String(),
			"error":   err.Error(),
		})
	}

	return &user.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.jwtManager.AccessExpiry()),
		User:         *u.ToResponse(),
	}, nil
}

func (s *userService) RefreshToken(ctx context.Context, req *user.RefreshRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	// Re-read the user so a role change or deactivation takes effect
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(s.jwtManager.AccessExpiry()),
	}, nil
}

// ════════════════════════════════════════════════════════════════
// PROFILE
// ════════════════════════════════════════════════════════════════

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*user.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.ToResponse(), nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateProfileRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != u.Email {
		taken, err := s.repo.ExistsByEmailExcept(ctx, *req.Email, id)
		if err != nil {
			return nil, fmt.Errorf("check email exists: %w", err)
		}
		if taken {
			return nil, user.ErrEmailAlreadyExists
		}
		u.Email = *req.Email
	}

	if req.DateOfBirth != nil {
		dob, err := time.Parse(user.DateOfBirthLayout, *req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("parse date of birth: %w", err)
		}
		u.DateOfBirth = dob
	}

	if req.ProfilePhotoURL != nil {
		if *req.ProfilePhotoURL == "" {
			u.ProfilePhotoURL = nil
		} else {
			u.ProfilePhotoURL = req.ProfilePhotoURL
		}
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u.ToResponse(), nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req *user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, id, string(newHash))
}

// ════════════════════════════════════════════════════════════════
// REPORTING
// ════════════════════════════════════════════════════════════════

func (s *userService) CountByRole(ctx context.Context) (map[string]int64, error) {
	return s.repo.CountByRole(ctx)
}
