package post

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePostRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     CreatePostRequest{Title: "Hello", Content: "First post"},
			wantErr: false,
		},
		{
			name:    "valid with tags",
			req:     CreatePostRequest{Title: "Hello", Content: "Tagged", Tags: []string{"go", "backend"}},
			wantErr: false,
		},
		{
			name:    "missing title",
			req:     CreatePostRequest{Content: "No title"},
			wantErr: true,
		},
		{
			name:    "missing content",
			req:     CreatePostRequest{Title: "No content"},
			wantErr: true,
		},
		{
			name:    "empty tag rejected",
			req:     CreatePostRequest{Title: "Hello", Content: "Bad tag", Tags: []string{""}},
			wantErr: true,
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

func TestCreatePostRequest_ToEntity(t *testing.T) {
	authorID := uuid.New()
	req := CreatePostRequest{Title: "Hello", Content: "Body", Tags: []string{"go"}}

	p := req.ToEntity(authorID)
	require.NotNil(t, p)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, authorID, p.AuthorID)
	assert.False(t, p.PublishedDate.IsZero())
	assert.Equal(t, []string{"go"}, []string(p.Tags))
}

func TestPost_ToResponse_NilTags(t *testing.T) {
	p := Post{ID: uuid.New(), Title: "No tags", Content: "Body"}

	resp := p.ToResponse("author@example.com")
	require.NotNil(t, resp.Tags)
	assert.Empty(t, resp.Tags)
	assert.Equal(t, "author@example.com", resp.AuthorEmail)
}

func TestUpdatePostRequest_ApplyToEntity(t *testing.T) {
	p := Post{Title: "Old", Content: "Old body", Tags: []string{"old"}}

	newTitle := "New"
	req := UpdatePostRequest{Title: &newTitle}
	req.ApplyToEntity(&p)

	assert.Equal(t, "New", p.Title)
	assert.Equal(t, "Old body", p.Content)
	assert.Equal(t, []string{"old"}, []string(p.Tags))
}
