package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderClause(t *testing.T) {
	tests := []struct {
		name     string
		ordering string
		want     string
		wantErr  error
	}{
		{name: "empty falls back to title ascending", ordering: "", want: "b.title ASC"},
		{name: "title ascending", ordering: "title", want: "b.title ASC"},
		{name: "title descending", ordering: "-title", want: "b.title DESC"},
		{name: "publication year ascending", ordering: "publication_year", want: "b.publication_year ASC"},
		{name: "publication year descending", ordering: "-publication_year", want: "b.publication_year DESC"},
		{name: "unknown field rejected", ordering: "price", wantErr: ErrInvalidOrdering},
		{name: "unknown descending field rejected", ordering: "-price", wantErr: ErrInvalidOrdering},
		{name: "injection attempt rejected", ordering: "title; DROP TABLE books", wantErr: ErrInvalidOrdering},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildOrderClause(tt.ordering)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
