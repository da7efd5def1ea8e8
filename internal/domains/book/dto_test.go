package book

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookRequest_Validate(t *testing.T) {
	validAuthor := uuid.New()

	tests := []struct {
		name    string
		req     CreateBookRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: CreateBookRequest{
				Title:           "The Go Programming Language",
				PublicationYear: 2015,
				AuthorID:        validAuthor,
			},
			wantErr: false,
		},
		{
			name: "current year is allowed",
			req: CreateBookRequest{
				Title:           "Fresh Off The Press",
				PublicationYear: time.Now().Year(),
				AuthorID:        validAuthor,
			},
			wantErr: false,
		},
		{
			name: "future publication year rejected",
			req: CreateBookRequest{
				Title:           "Not Yet Written",
				PublicationYear: time.Now().Year() + 1,
				AuthorID:        validAuthor,
			},
			wantErr: true,
		},
		{
			name: "missing title",
			req: CreateBookRequest{
				PublicationYear: 2015,
				AuthorID:        validAuthor,
			},
			wantErr: true,
		},
		{
			name: "missing author",
			req: CreateBookRequest{
				Title:           "Orphan Book",
				PublicationYear: 2015,
			},
			wantErr: true,
		},
		{
			name: "isbn too short",
			req: CreateBookRequest{
				Title:           "Bad ISBN",
				PublicationYear: 2015,
				ISBN:            strPtr("123"),
				AuthorID:        validAuthor,
			},
			wantErr: true,
		},
		{
			name: "valid isbn-13",
			req: CreateBookRequest{
				Title:           "Good ISBN",
				PublicationYear: 2015,
				ISBN:            strPtr("978-0134190440"),
				AuthorID:        validAuthor,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateBookRequest_Validate(t *testing.T) {
	t.Run("all nil fields pass", func(t *testing.T) {
		req := UpdateBookRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("future year rejected on update too", func(t *testing.T) {
		year := time.Now().Year() + 5
		req := UpdateBookRequest{PublicationYear: &year}
		assert.Error(t, req.Validate())
	})
}

func TestUpdateBookRequest_ApplyToEntity(t *testing.T) {
	original := Book{
		ID:              uuid.New(),
		Title:           "Old Title",
		PublicationYear: 1999,
		AuthorID:        uuid.New(),
	}

	newTitle := "New Title"
	req := UpdateBookRequest{Title: &newTitle}

	b := original
	req.ApplyToEntity(&b)

	assert.Equal(t, "New Title", b.Title)
	assert.Equal(t, original.PublicationYear, b.PublicationYear)
	assert.Equal(t, original.AuthorID, b.AuthorID)
}

func TestCreateBookRequest_ToEntity(t *testing.T) {
	req := CreateBookRequest{
		Title:           "Entity Test",
		PublicationYear: 2020,
		AuthorID:        uuid.New(),
	}

	b := req.ToEntity()
	require.NotNil(t, b)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, req.Title, b.Title)
	assert.Equal(t, req.AuthorID, b.AuthorID)
	assert.Nil(t, b.ISBN)
}

func strPtr(s string) *string { return &s }
