package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Author data access operations
type Repository interface {
	// Create inserts a new author
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID retrieves author by UUID
	// Returns: ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves a filtered, paginated list of authors
	// Returns: authors slice + total count for pagination
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update updates an existing author
	// Errors: ErrAuthorNotFound if not exists
	Update(ctx context.Context, author *Author) (*Author, error)

	// Delete removes author by ID. Owned books are removed by the
	// database via ON DELETE CASCADE.
	// Returns: ErrAuthorNotFound if not exists
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks if author exists without fetching full data
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// GetBookCount returns number of books by author
	GetBookCount(ctx context.Context, authorID uuid.UUID) (int, error)

	// Count returns total number of authors
	Count(ctx context.Context) (int64, error)
}
