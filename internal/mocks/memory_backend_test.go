package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackendAuthFlow(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	identity, err := b.Auth.SignUp(ctx, "A@B.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", identity.Email)

	_, err = b.Auth.SignUp(ctx, "a@b.com", "secret1")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)

	_, err = b.Auth.SignInWithPassword(ctx, "a@b.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	session, err := b.Auth.SignInWithPassword(ctx, "a@b.com", "secret1")
	require.NoError(t, err)

	got, err := b.Auth.GetUser(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, got.ID)

	require.NoError(t, b.Auth.SignOut(ctx, session.AccessToken))
	_, err = b.Auth.GetUser(ctx, session.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMemoryBackendPostsAndComments(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	post, err := b.Posts.Create(ctx, &domain.Post{Title: "Hello Go", Content: "body", Email: "a@b.com"})
	require.NoError(t, err)
	require.NotEmpty(t, post.ID)

	found, err := b.Posts.Search(ctx, store.ContainsAny("GO", "title", "content"))
	require.NoError(t, err)
	assert.Len(t, found, 1)

	comment, err := b.Comments.Create(ctx, &domain.Comment{PostID: post.ID, Content: "nice", Email: "c@d.com"})
	require.NoError(t, err)

	_, err = b.Comments.Update(ctx, "other-post", comment.ID, domain.CommentPatch{Content: "x", UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, store.ErrCommentNotFound)

	deleted, err := b.Posts.Delete(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, deleted, 1)

	comments, err := b.Comments.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	_, err = b.Posts.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, store.ErrPostNotFound)

	deleted, err = b.Posts.Delete(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}
