package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// CommentUpdate records one Update call.
type CommentUpdate struct {
	PostID string
	ID     string
	Patch  domain.CommentPatch
}

// CommentRef records one Delete call.
type CommentRef struct {
	PostID string
	ID     string
}

// MockCommentStore implements store.CommentStore for testing
type MockCommentStore struct {
	ListByPostFn func(ctx context.Context, postID string) ([]domain.Comment, error)
	CreateFn     func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	UpdateFn     func(ctx context.Context, postID, id string, patch domain.CommentPatch) (*domain.Comment, error)
	DeleteFn     func(ctx context.Context, postID, id string) (*domain.Comment, error)

	// Default values used when functions aren't explicitly defined
	Comment  *domain.Comment
	Comments []domain.Comment
	Err      error

	// Recorded calls
	ListByPostCalls []string
	CreateCalls     []*domain.Comment
	UpdateCalls     []CommentUpdate
	DeleteCalls     []CommentRef
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// Calls returns the total number of calls made to the store.
func (m *MockCommentStore) Calls() int {
	return len(m.ListByPostCalls) + len(m.CreateCalls) + len(m.UpdateCalls) + len(m.DeleteCalls)
}

// ListByPost implements store.CommentStore
func (m *MockCommentStore) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	m.ListByPostCalls = append(m.ListByPostCalls, postID)
	if m.ListByPostFn != nil {
		return m.ListByPostFn(ctx, postID)
	}
	return m.Comments, m.Err
}

// Create implements store.CommentStore
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	m.CreateCalls = append(m.CreateCalls, comment)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Comment != nil {
		return m.Comment, nil
	}
	return comment, nil
}

// Update implements store.CommentStore
func (m *MockCommentStore) Update(
	ctx context.Context,
	postID, id string,
	patch domain.CommentPatch,
) (*domain.Comment, error) {
	m.UpdateCalls = append(m.UpdateCalls, CommentUpdate{PostID: postID, ID: id, Patch: patch})
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, postID, id, patch)
	}
	return m.Comment, m.Err
}

// Delete implements store.CommentStore
func (m *MockCommentStore) Delete(ctx context.Context, postID, id string) (*domain.Comment, error) {
	m.DeleteCalls = append(m.DeleteCalls, CommentRef{PostID: postID, ID: id})
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, postID, id)
	}
	return m.Comment, m.Err
}
