package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog-backend/internal/domains/post"
)

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - constructor, returns the interface
func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

const postColumns = `
	p.id, p.title, p.content, p.published_date, p.tags, p.author_id,
	p.created_at, p.updated_at, u.email AS author_email
`

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
		INSERT INTO posts (id, title, content, published_date, tags, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, content, published_date, tags, author_id, created_at, updated_at
	`

	var created post.Post
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Content, p.PublishedDate, p.Tags, p.AuthorID, p.CreatedAt, p.UpdatedAt,
	).Scan(
		&created.ID, &created.Title, &created.Content, &created.PublishedDate,
		&created.Tags, &created.AuthorID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.PostWithAuthor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, postColumns)

	var pw post.PostWithAuthor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&pw.ID, &pw.Title, &pw.Content, &pw.PublishedDate, &pw.Tags,
		&pw.AuthorID, &pw.CreatedAt, &pw.UpdatedAt, &pw.AuthorEmail,
	)
	if err == pgx.ErrNoRows {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &pw, nil
}

func (r *postgresRepository) List(ctx context.Context, filter post.PostFilter) ([]post.PostWithAuthor, int64, error) {
	orderClause, err := post.BuildOrderClause(filter.Ordering)
	if err != nil {
		return nil, 0, err
	}

	whereClause, args := buildWhereClause(filter)
	argIndex := len(args) + 1

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM posts p
		JOIN users u ON u.id = p.author_id
		%s
	`, whereClause)

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.id = p.author_id
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, postColumns, whereClause, orderClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]post.PostWithAuthor, 0, filter.Limit)
	for rows.Next() {
		var pw post.PostWithAuthor
		if err := rows.Scan(
			&pw.ID, &pw.Title, &pw.Content, &pw.PublishedDate, &pw.Tags,
			&pw.AuthorID, &pw.CreatedAt, &pw.UpdatedAt, &pw.AuthorEmail,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, pw)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return posts, total, nil
}

func buildWhereClause(filter post.PostFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("p.author_id = $%d", argIndex))
		args = append(args, *filter.AuthorID)
		argIndex++
	}

	if filter.Tag != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(p.tags)", argIndex))
		args = append(args, filter.Tag)
		argIndex++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", argIndex, argIndex))
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

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]post.Post, error) {
	query := `
		SELECT id, title, content, published_date, tags, author_id, created_at, updated_at
		FROM posts
		WHERE author_id = $1
		ORDER BY published_date DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, authorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	defer rows.Close()

	posts := make([]post.Post, 0, limit)
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.PublishedDate, &p.Tags,
			&p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
		UPDATE posts
		SET title = $2, content = $3, tags = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, content, published_date, tags, author_id, created_at, updated_at
	`

	var updated post.Post
	err := r.pool.QueryRow(ctx, query, p.ID, p.Title, p.Content, p.Tags).Scan(
		&updated.ID, &updated.Title, &updated.Content, &updated.PublishedDate,
		&updated.Tags, &updated.AuthorID, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}
