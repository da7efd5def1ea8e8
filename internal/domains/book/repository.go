package book

import (
	"context"

	"github.com/google/uuid"
)

// BookWithAuthor pairs a book row with the joined author display name
type BookWithAuthor struct {
	Book
	AuthorName string `json:"author_name" db:"author_name"`
}

// Repository defines the interface for Book data access operations
type Repository interface {
	// Create inserts a new book
	Create(ctx context.Context, book *Book) (*Book, error)

	// GetByID retrieves a book with its author name.
	// Detail reads are cached; writes invalidate.
	// Returns: ErrBookNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*BookWithAuthor, error)

	// List applies, in order: exact filters (publication_year,
	// author_id), case-insensitive substring search over title and
	// author name, then ordering per BuildOrderClause.
	// Returns: books + total count for pagination
	// Errors: ErrInvalidOrdering on unknown ordering field
	List(ctx context.Context, filter BookFilter) ([]BookWithAuthor, int64, error)

	// Update updates an existing book
	// Errors: ErrBookNotFound if not exists
	Update(ctx context.Context, book *Book) (*Book, error)

	// Delete removes a book by ID
	// Returns: ErrBookNotFound if not exists
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns total number of books
	Count(ctx context.Context) (int64, error)
}
