package book

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a catalog entry. A book always belongs to exactly
// one author and is removed when that author is deleted.
type Book struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	PublicationYear int       `json:"publication_year" db:"publication_year"`
	ISBN            *string   `json:"isbn,omitempty" db:"isbn"`
	AuthorID        uuid.UUID `json:"author_id" db:"author_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// String returns the book's primary display field
func (b *Book) String() string {
	return b.Title
}
