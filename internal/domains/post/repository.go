package post

import (
	"context"

	"github.com/google/uuid"
)

// PostWithAuthor pairs a post row with the joined author email
type PostWithAuthor struct {
	Post
	AuthorEmail string `json:"author_email" db:"author_email"`
}

// Repository defines the interface for Post data access operations
type Repository interface {
	// Create inserts a new post
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves a post with its author email
	// Returns: ErrPostNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*PostWithAuthor, error)

	// List applies exact filters (author_id, tag membership), substring
	// search over title and content, then ordering per BuildOrderClause.
	// Returns: posts + total count for pagination
	List(ctx context.Context, filter PostFilter) ([]PostWithAuthor, int64, error)

	// ListByAuthor retrieves the most recent posts for one author
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]Post, error)

	// Update updates an existing post
	// Errors: ErrPostNotFound if not exists
	Update(ctx context.Context, post *Post) (*Post, error)

	// Delete removes a post by ID
	// Returns: ErrPostNotFound if not exists
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns total number of posts
	Count(ctx context.Context) (int64, error)
}
