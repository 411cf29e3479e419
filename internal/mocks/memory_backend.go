package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// MemoryBackend keeps users, sessions, posts and comments in maps. Its three
// views share one lock and one clock.
type MemoryBackend struct {
	Auth     *MemoryAuthenticator
	Posts    *MemoryPostStore
	Comments *MemoryCommentStore
}

type memoryState struct {
	mu        sync.Mutex
	now       func() time.Time
	passwords map[string]string // email -> password
	users     map[string]domain.Identity
	sessions  map[string]domain.Identity // token -> identity
	posts     map[string]domain.Post
	comments  map[string]domain.Comment
}

// NewMemoryBackend creates an empty backend using time.Now.
func NewMemoryBackend() *MemoryBackend {
	s := &memoryState{
		now:       time.Now,
		passwords: make(map[string]string),
		users:     make(map[string]domain.Identity),
		sessions:  make(map[string]domain.Identity),
		posts:     make(map[string]domain.Post),
		comments:  make(map[string]domain.Comment),
	}
	return &MemoryBackend{
		Auth:     &MemoryAuthenticator{s: s},
		Posts:    &MemoryPostStore{s: s},
		Comments: &MemoryCommentStore{s: s},
	}
}

// MemoryAuthenticator is the auth.Authenticator view of a MemoryBackend.
type MemoryAuthenticator struct{ s *memoryState }

var _ auth.Authenticator = (*MemoryAuthenticator)(nil)

// SignUp implements auth.Authenticator
func (a *MemoryAuthenticator) SignUp(_ context.Context, email, password string) (*domain.Identity, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	email = domain.NormalizeEmail(email)
	if _, exists := a.s.users[email]; exists {
		return nil, auth.ErrEmailTaken
	}
	identity := domain.Identity{ID: uuid.NewString(), Email: email, CreatedAt: a.s.now().UTC()}
	a.s.users[email] = identity
	a.s.passwords[email] = password
	return &identity, nil
}

// SignInWithPassword implements auth.Authenticator
func (a *MemoryAuthenticator) SignInWithPassword(
	_ context.Context,
	email, password string,
) (*domain.Session, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	email = domain.NormalizeEmail(email)
	identity, exists := a.s.users[email]
	if !exists || a.s.passwords[email] != password {
		return nil, auth.ErrInvalidCredentials
	}
	token := uuid.NewString()
	a.s.sessions[token] = identity
	return &domain.Session{
		AccessToken: token,
		TokenType:   domain.TokenTypeBearer,
		ExpiresAt:   a.s.now().Add(time.Hour).UTC(),
		User:        identity,
	}, nil
}

// SignOut implements auth.Authenticator
func (a *MemoryAuthenticator) SignOut(_ context.Context, token string) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.sessions[token]; !ok {
		return auth.ErrInvalidToken
	}
	delete(a.s.sessions, token)
	return nil
}

// GetUser implements auth.Authenticator
func (a *MemoryAuthenticator) GetUser(_ context.Context, token string) (*domain.Identity, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	identity, ok := a.s.sessions[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &identity, nil
}

// MemoryPostStore is the store.PostStore view of a MemoryBackend.
type MemoryPostStore struct{ s *memoryState }

var _ store.PostStore = (*MemoryPostStore)(nil)

// List implements store.PostStore, newest first.
func (p *MemoryPostStore) List(_ context.Context) ([]domain.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	return p.s.sortedPosts(func(domain.Post) bool { return true }), nil
}

// Search implements store.PostStore.
func (p *MemoryPostStore) Search(_ context.Context, filter store.OrFilter) ([]domain.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	return p.s.sortedPosts(func(post domain.Post) bool {
		for _, clause := range filter {
			var value string
			switch clause.Column {
			case "title":
				value = post.Title
			case "content":
				value = post.Content
			default:
				continue
			}
			if ilike(value, clause.Pattern) {
				return true
			}
		}
		return false
	}), nil
}

// GetByID implements store.PostStore
func (p *MemoryPostStore) GetByID(_ context.Context, id string) (*domain.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post, ok := p.s.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return &post, nil
}

// Create implements store.PostStore
func (p *MemoryPostStore) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	created := *post
	created.ID = uuid.NewString()
	now := p.s.now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	p.s.posts[created.ID] = created
	return &created, nil
}

// Update implements store.PostStore
func (p *MemoryPostStore) Update(_ context.Context, id string, patch domain.PostPatch) ([]domain.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post, ok := p.s.posts[id]
	if !ok {
		return []domain.Post{}, nil
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	post.UpdatedAt = patch.UpdatedAt
	p.s.posts[id] = post
	return []domain.Post{post}, nil
}

// Delete implements store.PostStore. Comments on the post go with it.
func (p *MemoryPostStore) Delete(_ context.Context, id string) ([]domain.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	post, ok := p.s.posts[id]
	if !ok {
		return []domain.Post{}, nil
	}
	delete(p.s.posts, id)
	for cid, c := range p.s.comments {
		if c.PostID == id {
			delete(p.s.comments, cid)
		}
	}
	return []domain.Post{post}, nil
}

// MemoryCommentStore is the store.CommentStore view of a MemoryBackend.
type MemoryCommentStore struct{ s *memoryState }

var _ store.CommentStore = (*MemoryCommentStore)(nil)

// ListByPost implements store.CommentStore, oldest first.
func (c *MemoryCommentStore) ListByPost(_ context.Context, postID string) ([]domain.Comment, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	out := []domain.Comment{}
	for _, comment := range c.s.comments {
		if comment.PostID == postID {
			out = append(out, comment)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Create implements store.CommentStore
func (c *MemoryCommentStore) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.posts[comment.PostID]; !ok {
		return nil, store.ErrPostNotFound
	}
	created := *comment
	created.ID = uuid.NewString()
	now := c.s.now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	c.s.comments[created.ID] = created
	return &created, nil
}

// Update implements store.CommentStore
func (c *MemoryCommentStore) Update(
	_ context.Context,
	postID, id string,
	patch domain.CommentPatch,
) (*domain.Comment, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	comment, ok := c.s.comments[id]
	if !ok || comment.PostID != postID {
		return nil, store.ErrCommentNotFound
	}
	comment.Content = patch.Content
	comment.UpdatedAt = patch.UpdatedAt
	c.s.comments[id] = comment
	return &comment, nil
}

// Delete implements store.CommentStore
func (c *MemoryCommentStore) Delete(_ context.Context, postID, id string) (*domain.Comment, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	comment, ok := c.s.comments[id]
	if !ok || comment.PostID != postID {
		return nil, store.ErrCommentNotFound
	}
	delete(c.s.comments, id)
	return &comment, nil
}

// sortedPosts returns matching posts newest first. Callers hold the lock.
func (s *memoryState) sortedPosts(match func(domain.Post) bool) []domain.Post {
	out := []domain.Post{}
	for _, post := range s.posts {
		if match(post) {
			out = append(out, post)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// ilike supports the %substring% patterns built by store.ContainsAny.
func ilike(value, pattern string) bool {
	needle := strings.Trim(pattern, "%")
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}
