package database

import (
	"context"
	"fmt"
	"log"
)

// Schema bootstrap. Statements are idempotent (IF NOT EXISTS) so Migrate
// can run on every startup. Referential integrity lives here: deleting an
// author cascades to its books, deleting a user cascades to their posts.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id               UUID PRIMARY KEY,
		title            TEXT NOT NULL,
		publication_year INT  NOT NULL,
		isbn             TEXT,
		author_id        UUID NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_books_publication_year ON books(publication_year)`,
	`CREATE TABLE IF NOT EXISTS users (
		id                UUID PRIMARY KEY,
		email             TEXT NOT NULL UNIQUE,
		password_hash     TEXT NOT NULL,
		date_of_birth     DATE NOT NULL,
		profile_photo_url TEXT,
		role              TEXT NOT NULL DEFAULT 'member',
		is_active         BOOLEAN NOT NULL DEFAULT TRUE,
		last_login_at     TIMESTAMPTZ,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id             UUID PRIMARY KEY,
		title          TEXT NOT NULL,
		content        TEXT NOT NULL,
		tags           TEXT[] NOT NULL DEFAULT '{}',
		published_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		author_id      UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id)`,
}

// Migrate applies the schema statements in order
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	log.Println("[DATABASE] Running schema migrations...")

	for i, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Printf("[DATABASE] Schema migrations applied (%d statements)", len(migrations))
	return nil
}
