package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService creates the service instance
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	// All validators run before any write; a failure blocks the whole write
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}

	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *authorService) GetWithBookCount(ctx context.Context, id uuid.UUID) (*author.Author, int, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.repo.GetBookCount(ctx, id)
	if err != nil {
		return nil, 0, fmt.Errorf("get book count: %w", err)
	}

	return a, count, nil
}

func (s *authorService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
