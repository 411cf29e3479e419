package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

// MaxTitleLength is the longest post title accepted, counted in characters.
const MaxTitleLength = 100

// Post validation errors
var (
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrTitleTooLong  = errors.New("title must be 100 characters or fewer")
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrEmptyAuthor   = errors.New("author email cannot be empty")
	ErrEmptyPostID   = errors.New("post ID cannot be empty")
	ErrEmptyPatchSet = errors.New("updated_at must be set")
)

// Post is a blog entry. ID and timestamps are assigned by the backend.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost builds a post authored by email. The returned post has no ID yet.
func NewPost(title, content, email string) (*Post, error) {
	post := &Post{
		Title:   title,
		Content: content,
		Email:   email,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks the fields a caller controls.
func (p *Post) Validate() error {
	if err := validateTitle(p.Title); err != nil {
		return err
	}
	if p.Content == "" {
		return ErrEmptyContent
	}
	if p.Email == "" {
		return ErrEmptyAuthor
	}
	return nil
}

// PostPatch is a partial update. Nil fields are left untouched.
type PostPatch struct {
	Title     *string
	Content   *string
	UpdatedAt time.Time
}

// Validate checks the supplied fields only.
func (p PostPatch) Validate() error {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Content != nil && *p.Content == "" {
		return ErrEmptyContent
	}
	if p.UpdatedAt.IsZero() {
		return ErrEmptyPatchSet
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
