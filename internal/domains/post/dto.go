package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CreatePostRequest - POST /v1/posts
// The author is the authenticated user, never taken from the body.
type CreatePostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags,omitempty"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Tags,
			validation.Each(validation.Length(1, 50)),
		),
	)
}

// UpdatePostRequest - PUT /v1/posts/:id
type UpdatePostRequest struct {
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 200)),
		),
		validation.Field(&r.Content,
			validation.When(r.Content != nil, validation.Length(1, 0)),
		),
		validation.Field(&r.Tags,
			validation.Each(validation.Length(1, 50)),
		),
	)
}

// PostResponse - post with the author's email joined in
type PostResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	PublishedDate time.Time `json:"published_date"`
	Tags          []string  `json:"tags"`
	AuthorID      uuid.UUID `json:"author_id"`
	AuthorEmail   string    `json:"author_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PostFilter - query parameters for the list endpoint
type PostFilter struct {
	AuthorID *uuid.UUID `json:"author_id" form:"-"` // bound by hand, gin query binding has no uuid support
	Tag      string     `json:"tag" form:"tag"`           // exact tag membership
	Search   string     `json:"search" form:"search"`     // substring over title + content
	Ordering string     `json:"ordering" form:"ordering"` // field or -field
	Limit    int        `json:"limit" form:"limit"`
	Offset   int        `json:"offset" form:"offset"`
}

// ToResponse converts Post to PostResponse
func (p *Post) ToResponse(authorEmail string) *PostResponse {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &PostResponse{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		PublishedDate: p.PublishedDate,
		Tags:          tags,
		AuthorID:      p.AuthorID,
		AuthorEmail:   authorEmail,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToEntity converts CreatePostRequest to Post. The published date is
// stamped at creation time, matching the column default.
func (r *CreatePostRequest) ToEntity(authorID uuid.UUID) *Post {
	now := time.Now()
	return &Post{
		ID:            uuid.New(),
		Title:         r.Title,
		Content:       r.Content,
		PublishedDate: now,
		Tags:          pq.StringArray(r.Tags),
		AuthorID:      authorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ApplyToEntity applies UpdatePostRequest to an existing Post
func (r *UpdatePostRequest) ApplyToEntity(p *Post) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	if r.Tags != nil {
		p.Tags = pq.StringArray(r.Tags)
	}
}
