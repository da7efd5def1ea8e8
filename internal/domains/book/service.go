package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Book domain
type Service interface {
	// Create creates a new book
	// Business rules:
	// - publication_year must not be in the future
	// - the referenced author must exist (400, not an FK error)
	// Errors: validation error, ErrAuthorNotFound
	Create(ctx context.Context, req *CreateBookRequest) (*BookWithAuthor, error)

	// GetByID retrieves a book with its author name
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*BookWithAuthor, error)

	// List retrieves books with filtering, search and ordering
	// Business rules:
	// - Default limit: 20, max: 100
	// - Default ordering: title ascending
	// Errors: ErrInvalidOrdering
	List(ctx context.Context, filter BookFilter) ([]BookWithAuthor, int64, error)

	// Update updates an existing book (partial: only non-nil fields)
	// Errors: ErrBookNotFound, ErrAuthorNotFound, validation error
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*BookWithAuthor, error)

	// Delete removes a book
	// Errors: ErrBookNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns total number of books (reporting views)
	Count(ctx context.Context) (int64, error)
}
