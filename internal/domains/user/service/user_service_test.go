package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/domains/user"
	"library-catalog-backend/pkg/jwt"
)

// fakeRepo is an in-memory user.Repository for service tests
type fakeRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[uuid.UUID]*user.User)}
}

func (f *fakeRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.ErrEmailAlreadyExists
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

func (f *fakeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ExistsByEmailExcept(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
	for id, u := range f.users {
		if u.Email == email && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CountByRole(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, role := range user.AllRoles() {
		counts[role] = 0
	}
	for _, u := range f.users {
		counts[u.Role]++
	}
	return counts, nil
}

func newTestService(repo user.Repository) user.Service {
	jwtManager := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	return NewUserService(repo, jwtManager)
}

func registerReq(email string) *user.RegisterRequest {
	return &user.RegisterRequest{
		Email:       email,
		Password:    "correct-horse",
		DateOfBirth: "1990-06-15",
	}
}

func TestRegister(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerReq("member@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "member@example.com", resp.Email)
	assert.Equal(t, user.RoleMember, resp.Role)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "1990-06-15", resp.DateOfBirth)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("dup@example.com"))
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newTestService(newFakeRepo())

	req := registerReq("short@example.com")
	req.Password = "short"

	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("login@example.com"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &user.LoginRequest{
		Email:    "login@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	assert.Equal(t, "login@example.com", resp.User.Email)

	// Login stamps last_login_at
	stored, err := repo.FindByEmail(ctx, "login@example.com")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("wrong@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, &user.LoginRequest{
		Email:    "wrong@example.com",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerReq("inactive@example.com"))
	require.NoError(t, err)

	repo.users[resp.ID].IsActive = false

	_, err = svc.Login(ctx, &user.LoginRequest{
		Email:    "inactive@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestRefreshToken(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("refresh@example.com"))
	require.NoError(t, err)

	login, err := svc.Login(ctx, &user.LoginRequest{
		Email:    "refresh@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	tokens, err := svc.RefreshToken(ctx, &user.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("swap@example.com"))
	require.NoError(t, err)

	login, err := svc.Login(ctx, &user.LoginRequest{
		Email:    "swap@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, &user.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestUpdateProfile_EmailTakenByOther(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	first, err := svc.Register(ctx, registerReq("first@example.com"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerReq("second@example.com"))
	require.NoError(t, err)

	taken := "second@example.com"
	_, err = svc.UpdateProfile(ctx, first.ID, &user.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestUpdateProfile_KeepOwnEmail(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	me, err := svc.Register(ctx, registerReq("keep@example.com"))
	require.NoError(t, err)

	// Re-submitting your own email is not a conflict
	same := "keep@example.com"
	dob := "1985-01-02"
	updated, err := svc.UpdateProfile(ctx, me.ID, &user.UpdateProfileRequest{
		Email:       &same,
		DateOfBirth: &dob,
	})
	require.NoError(t, err)
	assert.Equal(t, "keep@example.com", updated.Email)
	assert.Equal(t, "1985-01-02", updated.DateOfBirth)
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	me, err := svc.Register(ctx, registerReq("pw@example.com"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, me.ID, &user.ChangePasswordRequest{
		CurrentPassword: "correct-horse",
		NewPassword:     "battery-staple",
	})
	require.NoError(t, err)

	// Old password no longer works
	_, err = svc.Login(ctx, &user.LoginRequest{
		Email:    "pw@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	// New one does
	_, err = svc.Login(ctx, &user.LoginRequest{
		Email:    "pw@example.com",
		Password: "battery-staple",
	})
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	me, err := svc.Register(ctx, registerReq("pw2@example.com"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, me.ID, &user.ChangePasswordRequest{
		CurrentPassword: "not-it",
		NewPassword:     "battery-staple",
	})
	assert.ErrorIs(t, err, user.ErrWrongPassword)
}

func TestCountByRole(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	a, err := svc.Register(ctx, registerReq("a@example.com"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerReq("b@example.com"))
	require.NoError(t, err)

	repo.users[a.ID].Role = user.RoleLibrarian

	counts, err := svc.CountByRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[user.RoleLibrarian])
	assert.Equal(t, int64(1), counts[user.RoleMember])
	assert.Equal(t, int64(0), counts[user.RoleAdmin])
}
