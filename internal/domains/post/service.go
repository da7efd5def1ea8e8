package post

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Post domain
type Service interface {
	// Create creates a post owned by the authenticated user
	Create(ctx context.Context, authorID uuid.UUID, req *CreatePostRequest) (*PostWithAuthor, error)

	// GetByID retrieves a post with its author email
	// Errors: ErrPostNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*PostWithAuthor, error)

	// List retrieves posts with filtering, search and ordering
	// Errors: ErrInvalidOrdering
	List(ctx context.Context, filter PostFilter) ([]PostWithAuthor, int64, error)

	// ListByAuthor retrieves the most recent posts for one author
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]Post, error)

	// Update updates a post. Only the owner or an admin may modify.
	// Errors: ErrPostNotFound, ErrNotPostOwner, validation error
	Update(ctx context.Context, id, actorID uuid.UUID, actorRole string, req *UpdatePostRequest) (*PostWithAuthor, error)

	// Delete removes a post. Only the owner or an admin may delete.
	// Errors: ErrPostNotFound, ErrNotPostOwner
	Delete(ctx context.Context, id, actorID uuid.UUID, actorRole string) error

	// Count returns total number of posts (reporting views)
	Count(ctx context.Context) (int64, error)
}
