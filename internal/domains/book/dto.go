package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateBookRequest - POST /v1/books
type CreateBookRequest struct {
	Title           string    `json:"title" binding:"required"`
	PublicationYear int       `json:"publication_year" binding:"required"`
	ISBN            *string   `json:"isbn,omitempty"`
	AuthorID        uuid.UUID `json:"author_id" binding:"required"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.PublicationYear,
			validation.Required.Error("publication year is required"),
			validation.Min(1000),
			validation.Max(time.Now().Year()).Error("publication year cannot be in the future"),
		),
		validation.Field(&r.ISBN,
			validation.When(r.ISBN != nil, validation.Length(10, 17)),
		),
		validation.Field(&r.AuthorID,
			validation.By(requireUUID("author is required")),
		),
	)
}

// UpdateBookRequest - PUT /v1/books/:id
// All fields optional for partial updates (PATCH behavior)
type UpdateBookRequest struct {
	Title           *string    `json:"title,omitempty"`
	PublicationYear *int       `json:"publication_year,omitempty"`
	ISBN            *string    `json:"isbn,omitempty"`
	AuthorID        *uuid.UUID `json:"author_id,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 500)),
		),
		validation.Field(&r.PublicationYear,
			validation.When(r.PublicationYear != nil,
				validation.Min(1000),
				validation.Max(time.Now().Year()).Error("publication year cannot be in the future"),
			),
		),
		validation.Field(&r.ISBN,
			validation.When(r.ISBN != nil, validation.Length(10, 17)),
		),
	)
}

// requireUUID rejects the zero UUID (gin binding leaves it zero when absent)
func requireUUID(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		id, _ := value.(uuid.UUID)
		if id == uuid.Nil {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}

// BookResponse - book with the author's display name joined in
type BookResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	PublicationYear int       `json:"publication_year"`
	ISBN            *string   `json:"isbn,omitempty"`
	AuthorID        uuid.UUID `json:"author_id"`
	AuthorName      string    `json:"author_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookFilter - query parameters for the list endpoint.
// Applied in order: exact filters, substring search, ordering.
type BookFilter struct {
	PublicationYear *int       `json:"publication_year" form:"publication_year"`
	AuthorID        *uuid.UUID `json:"author_id" form:"-"` // bound by hand, gin query binding has no uuid support
	Search          string     `json:"search" form:"search"`     // substring over title + author name
	Ordering        string     `json:"ordering" form:"ordering"` // field or -field
	Limit           int        `json:"limit" form:"limit"`
	Offset          int        `json:"offset" form:"offset"`
}

// ToResponse converts Book to BookResponse; authorName may be empty
// when the caller did not join the authors table
func (b *Book) ToResponse(authorName string) *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
		AuthorID:        b.AuthorID,
		AuthorName:      authorName,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToEntity converts CreateBookRequest to Book entity
func (r *CreateBookRequest) ToEntity() *Book {
	now := time.Now()
	return &Book{
		ID:              uuid.New(),
		Title:           r.Title,
		PublicationYear: r.PublicationYear,
		ISBN:            r.ISBN,
		AuthorID:        r.AuthorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ApplyToEntity applies UpdateBookRequest to an existing Book entity
func (r *UpdateBookRequest) ApplyToEntity(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.PublicationYear != nil {
		b.PublicationYear = *r.PublicationYear
	}
	if r.ISBN != nil {
		b.ISBN = r.ISBN
	}
	if r.AuthorID != nil {
		b.AuthorID = *r.AuthorID
	}
}
