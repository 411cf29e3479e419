package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostUpdate records one Update call.
type PostUpdate struct {
	ID    string
	Patch domain.PostPatch
}

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	ListFn    func(ctx context.Context) ([]domain.Post, error)
	SearchFn  func(ctx context.Context, filter store.OrFilter) ([]domain.Post, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.Post, error)
	CreateFn  func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	UpdateFn  func(ctx context.Context, id string, patch domain.PostPatch) ([]domain.Post, error)
	DeleteFn  func(ctx context.Context, id string) ([]domain.Post, error)

	// Default values used when functions aren't explicitly defined
	Post  *domain.Post
	Posts []domain.Post
	Err   error

	// Recorded calls
	SearchCalls  []store.OrFilter
	GetByIDCalls []string
	CreateCalls  []*domain.Post
	UpdateCalls  []PostUpdate
	DeleteCalls  []string
	ListCalls    int
}

var _ store.PostStore = (*MockPostStore)(nil)

// List implements store.PostStore
func (m *MockPostStore) List(ctx context.Context) ([]domain.Post, error) {
	m.ListCalls++
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Posts, m.Err
}

// Search implements store.PostStore
func (m *MockPostStore) Search(ctx context.Context, filter store.OrFilter) ([]domain.Post, error) {
	m.SearchCalls = append(m.SearchCalls, filter)
	if m.SearchFn != nil {
		return m.SearchFn(ctx, filter)
	}
	return m.Posts, m.Err
}

// GetByID implements store.PostStore
func (m *MockPostStore) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	m.GetByIDCalls = append(m.GetByIDCalls, id)
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Post, m.Err
}

// Create implements store.PostStore
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	m.CreateCalls = append(m.CreateCalls, post)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Post != nil {
		return m.Post, nil
	}
	return post, nil
}

// Update implements store.PostStore
func (m *MockPostStore) Update(ctx context.Context, id string, patch domain.PostPatch) ([]domain.Post, error) {
	m.UpdateCalls = append(m.UpdateCalls, PostUpdate{ID: id, Patch: patch})
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return m.Posts, m.Err
}

// Delete implements store.PostStore
func (m *MockPostStore) Delete(ctx context.Context, id string) ([]domain.Post, error) {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Posts, m.Err
}
