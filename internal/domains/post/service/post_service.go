package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/post"
	"library-catalog-backend/internal/domains/user"
)

type postService struct {
	repo post.Repository
}

// NewPostService creates the service instance
func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, req *post.CreatePostRequest) (*post.PostWithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity(authorID))
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return s.repo.GetByID(ctx, created.ID)
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.PostWithAuthor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) List(ctx context.Context, filter post.PostFilter) ([]post.PostWithAuthor, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.List(ctx, filter)
}

func (s *postService) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]post.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.repo.ListByAuthor(ctx, authorID, limit)
}

func (s *postService) Update(ctx context.Context, id, actorID uuid.UUID, actorRole string, req *post.UpdatePostRequest) (*post.PostWithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkOwnership(existing, actorID, actorRole); err != nil {
		return nil, err
	}

	entity := existing.Post
	req.ApplyToEntity(&entity)

	if _, err := s.repo.Update(ctx, &entity); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *postService) Delete(ctx context.Context, id, actorID uuid.UUID, actorRole string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := checkOwnership(existing, actorID, actorRole); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *postService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// checkOwnership allows the post owner and admins
func checkOwnership(p *post.PostWithAuthor, actorID uuid.UUID, actorRole string) error {
	if p.AuthorID != actorID && actorRole != user.RoleAdmin {
		return post.ErrNotPostOwner
	}
	return nil
}
