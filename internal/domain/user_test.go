package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com "))
	assert.Equal(t, "", NormalizeEmail(""))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("content", "is required", ErrEmptyContent)
	assert.Equal(t, "content is required", err.Error())
	assert.True(t, errors.Is(err, ErrEmptyContent))

	// nil wrapped error falls back to ErrValidation
	err = NewValidationError("title", "is required", nil)
	assert.True(t, errors.Is(err, ErrValidation))
}
