//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/phrazzld/blog-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_PostAndCommentLifecycle(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		posts := postgres.NewPostgresPostStore(tx, nil)
		comments := postgres.NewPostgresCommentStore(tx, nil)

		post, err := domain.NewPost("Integration", "needle in content", "it@example.com")
		require.NoError(t, err)
		created, err := posts.Create(ctx, post)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		found, err := posts.Search(ctx, store.ContainsAny("NEEDLE", "title", "content"))
		require.NoError(t, err)
		assert.NotEmpty(t, found)

		comment, err := comments.Create(ctx, &domain.Comment{PostID: created.ID, Content: "hi", Email: "it@example.com"})
		require.NoError(t, err)

		updated, err := comments.Update(ctx, created.ID, comment.ID,
			domain.CommentPatch{Content: "edited", UpdatedAt: time.Now().UTC()})
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)

		deleted, err := posts.Delete(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, deleted, 1)

		_, err = posts.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrPostNotFound)

		remaining, err := comments.ListByPost(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}

func TestIntegration_UserEmailUnique(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		users := postgres.NewPostgresUserStore(tx, nil)
		now := time.Now().UTC()

		first := &domain.User{Email: "dup@example.com", HashedPassword: "h", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, users.Create(ctx, first))

		second := &domain.User{Email: "dup@example.com", HashedPassword: "h", CreatedAt: now, UpdatedAt: now}
		assert.ErrorIs(t, users.Create(ctx, second), store.ErrEmailExists)
	})
}
