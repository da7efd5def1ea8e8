package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Author domain
type Service interface {
	// Create creates a new author
	// Business rules:
	// - Name must not be empty or whitespace-only
	// - Name must be at least 3 characters after trimming
	// Errors: validation error, ErrInvalidName
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves author by UUID
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves paginated list of authors with filtering
	// Business rules:
	// - Default limit: 20, max: 100
	// - Search by name is case-insensitive partial match
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update updates an existing author (partial: only non-nil fields)
	// Errors: ErrAuthorNotFound, validation error
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes an author. Deleting an author cascades deletion
	// of all their books.
	// Errors: ErrAuthorNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// GetWithBookCount retrieves author with aggregated book count
	// Errors: ErrAuthorNotFound
	GetWithBookCount(ctx context.Context, id uuid.UUID) (*Author, int, error)

	// Count returns total number of authors (reporting views)
	Count(ctx context.Context) (int64, error)
}
