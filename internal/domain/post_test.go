package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewPost(t *testing.T) {
	t.Parallel()

	post, err := NewPost("Hello", "World", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
	assert.Equal(t, "a@b.com", post.Email)
	assert.Empty(t, post.ID, "IDs are assigned by the backend")
}

func TestPostValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		post    Post
		wantErr error
	}{
		{"valid", Post{Title: "T", Content: "C", Email: "a@b.com"}, nil},
		{"empty title", Post{Title: "", Content: "C", Email: "a@b.com"}, ErrEmptyTitle},
		{"title at limit", Post{Title: strings.Repeat("x", 100), Content: "C", Email: "a@b.com"}, nil},
		{"title over limit", Post{Title: strings.Repeat("x", 101), Content: "C", Email: "a@b.com"}, ErrTitleTooLong},
		{"multibyte title at limit", Post{Title: strings.Repeat("é", 100), Content: "C", Email: "a@b.com"}, nil},
		{"empty content", Post{Title: "T", Content: "", Email: "a@b.com"}, ErrEmptyContent},
		{"missing author", Post{Title: "T", Content: "C"}, ErrEmptyAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostPatchValidate(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name    string
		patch   PostPatch
		wantErr error
	}{
		{"no fields only timestamp", PostPatch{UpdatedAt: now}, nil},
		{"title only", PostPatch{Title: strPtr("New"), UpdatedAt: now}, nil},
		{"empty title", PostPatch{Title: strPtr(""), UpdatedAt: now}, ErrEmptyTitle},
		{"long title", PostPatch{Title: strPtr(strings.Repeat("x", 101)), UpdatedAt: now}, ErrTitleTooLong},
		{"empty content", PostPatch{Content: strPtr(""), UpdatedAt: now}, ErrEmptyContent},
		{"missing timestamp", PostPatch{Title: strPtr("New")}, ErrEmptyPatchSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
