package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/pkg/cache"
	"library-catalog-backend/pkg/logger"
)

const (
	bookDetailKeyPrefix = "books:detail:"
	bookCachePattern    = "books:*"
	bookDetailTTL       = 5 * time.Minute
)

// postgresRepository - raw SQL with pgxpool, detail reads cached in Redis
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository - constructor, returns the interface
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

const bookColumns = `
	b.id, b.title, b.publication_year, b.isbn, b.author_id,
	b.created_at, b.updated_at, a.name AS author_name
`

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
		INSERT INTO books (id, title, publication_year, isbn, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, publication_year, isbn, author_id, created_at, updated_at
	`

	var created book.Book
	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.PublicationYear, b.ISBN, b.AuthorID, b.CreatedAt, b.UpdatedAt,
	).Scan(
		&created.ID, &created.Title, &created.PublicationYear, &created.ISBN,
		&created.AuthorID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidate(ctx)
	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.BookWithAuthor, error) {
	cacheKey := bookDetailKeyPrefix + id.String()

	var cached book.BookWithAuthor
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1
	`, bookColumns)

	var bw book.BookWithAuthor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&bw.ID, &bw.Title, &bw.PublicationYear, &bw.ISBN, &bw.AuthorID,
		&bw.CreatedAt, &bw.UpdatedAt, &bw.AuthorName,
	)
	if err == pgx.ErrNoRows {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, &bw, bookDetailTTL); err != nil {
		logger.Warn("failed to cache book detail", map[string]interface{}{
			"book_id": id.String(),
			"error":   err.Error(),
		})
	}

	return &bw, nil
}

func (r *postgresRepository) List(ctx context.Context, filter book.BookFilter) ([]book.BookWithAuthor, int64, error) {
	orderClause, err := book.BuildOrderClause(filter.Ordering)
	if err != nil {
		return nil, 0, err
	}

	whereClause, args := buildWhereClause(filter)
	argIndex := len(args) + 1

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM books b
		JOIN authors a ON a.id = b.author_id
		%s
	`, whereClause)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM books b
		JOIN authors a ON a.id = b.author_id
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, bookColumns, whereClause, orderClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.BookWithAuthor, 0, filter.Limit)
	for rows.Next() {
		var bw book.BookWithAuthor
		if err := rows.Scan(
			&bw.ID, &bw.Title, &bw.PublicationYear, &bw.ISBN, &bw.AuthorID,
			&bw.CreatedAt, &bw.UpdatedAt, &bw.AuthorName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, bw)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return books, total, nil
}

// buildWhereClause assembles exact filters then substring search.
// Search matches the book title or the author name, case-insensitive.
func buildWhereClause(filter book.BookFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.PublicationYear != nil {
		conditions = append(conditions, fmt.Sprintf("b.publication_year = $%d", argIndex))
		args = append(args, *filter.PublicationYear)
		argIndex++
	}

	if filter.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("b.author_id = $%d", argIndex))
		args = append(args, *filter.AuthorID)
		argIndex++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(b.title ILIKE $%d OR a.name ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}

	whereClause := "WHERE " + conditions[0]
	for _, cond := range conditions[1:] {
		whereClause += " AND " + cond
	}

	return whereClause, args
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
		UPDATE books
		SET title = $2, publication_year = $3, isbn = $4, author_id = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, publication_year, isbn, author_id, created_at, updated_at
	`

	var updated book.Book
	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.PublicationYear, b.ISBN, b.AuthorID,
	).Scan(
		&updated.ID, &updated.Title, &updated.PublicationYear, &updated.ISBN,
		&updated.AuthorID, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.invalidate(ctx)
	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

// invalidate drops every cached book entry after a write.
// Cache failures must not break the write path.
func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, bookCachePattern); err != nil {
		logger.Warn("failed to invalidate book cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
