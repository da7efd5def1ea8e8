package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/book"
)

type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
}

// NewBookService creates the service instance
func NewBookService(repo book.Repository, authorRepo author.Repository) book.Service {
	return &bookService{repo: repo, authorRepo: authorRepo}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.BookWithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// A dangling author reference is a client error, not an FK violation
	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return s.repo.GetByID(ctx, created.ID)
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookWithAuthor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, filter book.BookFilter) ([]book.BookWithAuthor, int64, error) {
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

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.BookWithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AuthorID != nil {
		if err := s.checkAuthor(ctx, *req.AuthorID); err != nil {
			return nil, err
		}
	}

	entity := existing.Book
	req.ApplyToEntity(&entity)

	if _, err := s.repo.Update(ctx, &entity); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *bookService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *bookService) checkAuthor(ctx context.Context, authorID uuid.UUID) error {
	exists, err := s.authorRepo.ExistsByID(ctx, authorID)
	if err != nil {
		return fmt.Errorf("check author: %w", err)
	}
	if !exists {
		return book.ErrAuthorNotFound
	}
	return nil
}
