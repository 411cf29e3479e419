package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"ErrPostNotFound", ErrPostNotFound, true},
		{"ErrCommentNotFound", ErrCommentNotFound, true},
		{"ErrUserNotFound", ErrUserNotFound, true},
		{"wrapped ErrPostNotFound", fmt.Errorf("get post: %w", ErrPostNotFound), true},
		{"ErrDuplicate", ErrDuplicate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create user: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrPostNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestEntityErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrPostNotFound, ErrCommentNotFound))
	assert.False(t, errors.Is(ErrCommentNotFound, ErrPostNotFound))
}
