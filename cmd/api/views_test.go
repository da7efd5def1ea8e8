package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"library-catalog-backend/internal/domains/post"
	"library-catalog-backend/internal/domains/user"
	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/pkg/container"
)

// fakeUserService returns a fixed profile or error for view tests
type fakeUserService struct {
	profile *user.UserResponse
	err     error
}

func (f *fakeUserService) Register(context.Context, *user.RegisterRequest) (*user.UserResponse, error) {
	return nil, nil
}
func (f *fakeUserService) Login(context.Context, *user.LoginRequest) (*user.LoginResponse, error) {
	return nil, nil
}
func (f *fakeUserService) RefreshToken(context.Context, *user.RefreshRequest) (*user.TokenResponse, error) {
	return nil, nil
}
func (f *fakeUserService) GetProfile(context.Context, uuid.UUID) (*user.UserResponse, error) {
	return f.profile, f.err
}
func (f *fakeUserService) UpdateProfile(context.Context, uuid.UUID, *user.UpdateProfileRequest) (*user.UserResponse, error) {
	return nil, nil
}
func (f *fakeUserService) ChangePassword(context.Context, uuid.UUID, *user.ChangePasswordRequest) error {
	return nil
}
func (f *fakeUserService) CountByRole(context.Context) (map[string]int64, error) {
	return nil, nil
}

// fakePostService serves an empty recent-posts list
type fakePostService struct{}

func (fakePostService) Create(context.Context, uuid.UUID, *post.CreatePostRequest) (*post.PostWithAuthor, error) {
	return nil, nil
}
func (fakePostService) GetByID(context.Context, uuid.UUID) (*post.PostWithAuthor, error) {
	return nil, nil
}
func (fakePostService) List(context.Context, post.PostFilter) ([]post.PostWithAuthor, int64, error) {
	return nil, 0, nil
}
func (fakePostService) ListByAuthor(context.Context, uuid.UUID, int) ([]post.Post, error) {
	return []post.Post{}, nil
}
func (fakePostService) Update(context.Context, uuid.UUID, uuid.UUID, string, *post.UpdatePostRequest) (*post.PostWithAuthor, error) {
	return nil, nil
}
func (fakePostService) Delete(context.Context, uuid.UUID, uuid.UUID, string) error {
	return nil
}
func (fakePostService) Count(context.Context) (int64, error) {
	return 0, nil
}

func memberViewRouter(userSvc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	appCtx := &container.Container{
		UserService: userSvc,
		PostService: fakePostService{},
	}

	r := gin.New()
	r.GET("/member-view", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
		c.Next()
	}, memberViewHandler(appCtx))
	return r
}

func TestMemberView_DeletedUserIs404(t *testing.T) {
	// The token is still valid but the account is gone
	router := memberViewRouter(&fakeUserService{err: user.ErrUserNotFound})

	req := httptest.NewRequest(http.MethodGet, "/member-view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "USER_NOT_FOUND")
}

func TestMemberView_OK(t *testing.T) {
	profile := &user.UserResponse{
		ID:    uuid.New(),
		Email: "member@example.com",
		Role:  user.RoleMember,
	}
	router := memberViewRouter(&fakeUserService{profile: profile})

	req := httptest.NewRequest(http.MethodGet, "/member-view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "member@example.com")
}
