package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog-backend/internal/domains/user"
	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// handleError maps domain and validation errors to HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	if verrs, ok := err.(validation.Errors); ok {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED",
			"validation failed", verrs)
		return
	}

	response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
}

// ════════════════════════════════════════════════════════════════
// AUTH: POST /v1/auth/register
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Register successfully", created)
}

// ════════════════════════════════════════════════════════════════
// AUTH: POST /v1/auth/login
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successfully", result)
}

// ════════════════════════════════════════════════════════════════
// AUTH: POST /v1/auth/logout
// Tokens are stateless; the client discards them. The endpoint
// exists so clients have a uniform auth lifecycle.
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logout successfully", nil)
}

// ════════════════════════════════════════════════════════════════
// AUTH: POST /v1/auth/refresh
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Refresh token successfully", result)
}

// ════════════════════════════════════════════════════════════════
// PROFILE: GET /v1/users/me
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Forbidden(c, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get profile successfully", profile)
}

// ════════════════════════════════════════════════════════════════
// PROFILE: PUT /v1/users/me
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Forbidden(c, "Authentication required")
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Update profile successfully", updated)
}

// ════════════════════════════════════════════════════════════════
// PROFILE: POST /v1/users/change-password
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Forbidden(c, "Authentication required")
		return
	}

	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Change password successfully", nil)
}
