package post

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Post represents a blog post entity. Tags live in a Postgres text[]
// column, scanned through pq.StringArray.
type Post struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Content       string         `json:"content" db:"content"`
	PublishedDate time.Time      `json:"published_date" db:"published_date"`
	Tags          pq.StringArray `json:"tags" db:"tags"`
	AuthorID      uuid.UUID      `json:"author_id" db:"author_id"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

func (p *Post) String() string {
	return fmt.Sprintf("Post{ID: %s, Title: %s}", p.ID, p.Title)
}
