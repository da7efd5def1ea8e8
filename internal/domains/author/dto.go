package author

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Constants for validation
const (
	MinNameLength = 3
	MaxNameLength = 255
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("author name is required"),
			validation.By(validateName),
		),
	)
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// Name is optional for partial updates
type UpdateAuthorRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.By(func(value interface{}) error {
				name, _ := value.(*string)
				if name == nil {
					return nil
				}
				return validateName(*name)
			})),
		),
	)
}

// validateName enforces the name data-quality rule: not empty or
// whitespace-only, at least MinNameLength characters after trimming.
// Lengths count characters, not bytes, so multibyte names measure the
// same as ASCII ones.
func validateName(value interface{}) error {
	name, _ := value.(string)
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("author name cannot be empty or just spaces")
	}
	length := utf8.RuneCountInString(trimmed)
	if length < MinNameLength {
		return errors.New("author name must be at least 3 characters long")
	}
	if length > MaxNameLength {
		return errors.New("author name exceeds maximum length")
	}
	return nil
}

// AuthorResponse - basic author information
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorDetailResponse - author with aggregated book count
type AuthorDetailResponse struct {
	AuthorResponse
	BookCount int `json:"book_count"`
}

// AuthorFilter - query parameters for list/search
type AuthorFilter struct {
	Search string `json:"search" form:"search"` // partial name match, case-insensitive
	Limit  int    `json:"limit" form:"limit"`
	Offset int    `json:"offset" form:"offset"`
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToDetailResponse converts Author to detailed response with book count
func (a *Author) ToDetailResponse(bookCount int) *AuthorDetailResponse {
	return &AuthorDetailResponse{
		AuthorResponse: *a.ToResponse(),
		BookCount:      bookCount,
	}
}

// ToEntity converts CreateAuthorRequest to Author entity
func (r *CreateAuthorRequest) ToEntity() *Author {
	now := time.Now()
	return &Author{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(r.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyToEntity applies UpdateAuthorRequest to existing Author entity
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if r.Name != nil {
		a.Name = strings.TrimSpace(*r.Name)
	}
}
