package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAny(t *testing.T) {
	t.Parallel()

	filter := ContainsAny("foo", "title", "content")

	assert.Equal(t, OrFilter{
		{Column: "title", Pattern: "%foo%"},
		{Column: "content", Pattern: "%foo%"},
	}, filter)
	assert.Equal(t, "title.ilike.%foo%,content.ilike.%foo%", filter.String())
}

func TestOrFilterString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", OrFilter{}.String())
	assert.Equal(t, "title.ilike.a%", OrFilter{{Column: "title", Pattern: "a%"}}.String())
}
