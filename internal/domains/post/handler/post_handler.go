package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/post"
	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{service: svc}
}

// handleError maps domain and validation errors to HTTP responses
func (h *PostHandler) handleError(c *gin.Context, err error) {
	if verrs, ok := err.(validation.Errors); ok {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED",
			"validation failed", verrs)
		return
	}

	response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
}

func toResponse(pw *post.PostWithAuthor) *post.PostResponse {
	return pw.Post.ToResponse(pw.AuthorEmail)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/posts
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Forbidden(c, "Authentication required")
		return
	}

	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Create post successfully", toResponse(created))
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/posts/:id
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	pw, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get post successfully", toResponse(pw))
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /v1/posts?author_id=&tag=&search=&ordering=
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) List(c *gin.Context) {
	var filter post.PostFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if raw := c.Query("author_id"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid author_id format")
			return
		}
		filter.AuthorID = &authorID
	}

	// Normalize here so the meta block reports the effective values
	filter.Limit, filter.Offset = response.NormalizePagination(filter.Limit, filter.Offset)

	posts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	postResponses := make([]post.PostResponse, len(posts))
	for i := range posts {
		postResponses[i] = *toResponse(&posts[i])
	}

	response.SuccessWithMeta(c, http.StatusOK, "List posts successfully", postResponses, &response.Meta{
		Page:  filter.Offset/filter.Limit + 1,
		Limit: filter.Limit,
		Total: int(total),
	})
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/posts/:id
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Forbidden(c, "Authentication required")
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, userID, role, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Update post successfully", toResponse(updated))
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/posts/:id
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Forbidden(c, "Authentication required")
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID, role); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
