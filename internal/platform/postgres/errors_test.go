package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, store.ErrDuplicate},
		{"foreign key", &pgconn.PgError{Code: "23503"}, store.ErrInvalidEntity},
		{"check", &pgconn.PgError{Code: "23514"}, store.ErrInvalidEntity},
		{"not null", &pgconn.PgError{Code: "23502"}, store.ErrInvalidEntity},
		{"bad uuid text", &pgconn.PgError{Code: "22P02"}, store.ErrNotFound},
		{"wrapped unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), store.ErrDuplicate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := postgres.MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.want)

			var pgErr *pgconn.PgError
			if errors.As(tt.err, &pgErr) {
				assert.True(t, errors.As(mapped, &pgErr), "original error should stay reachable")
			}
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, postgres.MapError(nil))

	plain := errors.New("network down")
	assert.Equal(t, plain, postgres.MapError(plain))

	other := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(other), postgres.MapError(other))
}

func TestViolationHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, postgres.IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, postgres.IsForeignKeyViolation(errors.New("x")))
	assert.True(t, postgres.IsNotFoundError(sql.ErrNoRows))
	assert.True(t, postgres.IsNotFoundError(store.ErrPostNotFound))
	assert.False(t, postgres.IsNotFoundError(nil))
}

func TestMigrationFiles(t *testing.T) {
	t.Parallel()

	files, err := postgres.MigrationFiles()
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Contains(t, files[0], "create_users")
	assert.Contains(t, files[1], "create_posts")
	assert.Contains(t, files[2], "create_comments")
}
