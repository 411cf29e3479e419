package domain

import "time"

// Comment belongs to exactly one post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Content   string    `json:"content"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewComment builds a comment on postID authored by email.
func NewComment(postID, content, email string) (*Comment, error) {
	comment := &Comment{
		PostID:  postID,
		Content: content,
		Email:   email,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks the fields a caller controls.
func (c *Comment) Validate() error {
	if c.PostID == "" {
		return ErrEmptyPostID
	}
	if c.Content == "" {
		return ErrEmptyContent
	}
	if c.Email == "" {
		return ErrEmptyAuthor
	}
	return nil
}

// CommentPatch replaces a comment's content.
type CommentPatch struct {
	Content   string
	UpdatedAt time.Time
}

// Validate reports whether the patch carries new content and a timestamp.
func (p CommentPatch) Validate() error {
	if p.Content == "" {
		return ErrEmptyContent
	}
	if p.UpdatedAt.IsZero() {
		return ErrEmptyPatchSet
	}
	return nil
}
