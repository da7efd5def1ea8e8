package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// handleError maps domain and validation errors to HTTP responses
func (h *BookHandler) handleError(c *gin.Context, err error) {
	if verrs, ok := err.(validation.Errors); ok {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED",
			"validation failed", verrs)
		return
	}

	response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
}

func toResponse(bw *book.BookWithAuthor) *book.BookResponse {
	return bw.Book.ToResponse(bw.AuthorName)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Create book successfully", toResponse(created))
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	bw, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get book successfully", toResponse(bw))
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /v1/books?publication_year=&author_id=&search=&ordering=
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) List(c *gin.Context) {
	var filter book.BookFilter
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

	books, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	bookResponses := make([]book.BookResponse, len(books))
	for i := range books {
		bookResponses[i] = *toResponse(&books[i])
	}

	response.SuccessWithMeta(c, http.StatusOK, "List books successfully", bookResponses, &response.Meta{
		Page:  filter.Offset/filter.Limit + 1,
		Limit: filter.Limit,
		Total: int(total),
	})
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Update book successfully", toResponse(updated))
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
