package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

const commentColumns = "id, post_id, content, email, created_at, updated_at"

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByPost implements store.CommentStore.ListByPost, oldest first.
func (s *PostgresCommentStore) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := uuid.Parse(postID); err != nil {
		return []domain.Comment{}, nil
	}

	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		log.Error("failed to list comments",
			slog.String("error", err.Error()),
			slog.String("post_id", postID))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	comments := []domain.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		comments = append(comments, *comment)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating comment rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return comments, nil
}

// Create implements store.CommentStore.Create.
// Returns store.ErrPostNotFound if the parent post does not exist.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	if _, err := uuid.Parse(comment.PostID); err != nil {
		return nil, store.ErrPostNotFound
	}

	query := `
		INSERT INTO comments (post_id, content, email)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	created, err := scanComment(s.db.QueryRowContext(ctx, query, comment.PostID, comment.Content, comment.Email))
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("comment references missing post", slog.String("post_id", comment.PostID))
			return nil, fmt.Errorf("%w: %w", store.ErrPostNotFound, err)
		}
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("post_id", comment.PostID))
		return nil, MapError(err)
	}

	log.Info("comment created successfully",
		slog.String("comment_id", created.ID),
		slog.String("post_id", created.PostID))
	return created, nil
}

// Update implements store.CommentStore.Update.
// Returns store.ErrCommentNotFound unless the comment exists under postID.
func (s *PostgresCommentStore) Update(
	ctx context.Context,
	postID, id string,
	patch domain.CommentPatch,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		log.Warn("comment patch validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	if !validIDs(postID, id) {
		return nil, store.ErrCommentNotFound
	}

	query := `
		UPDATE comments
		SET content = $1, updated_at = $2
		WHERE id = $3 AND post_id = $4
		RETURNING ` + commentColumns

	updated, err := scanComment(s.db.QueryRowContext(ctx, query, patch.Content, patch.UpdatedAt, id, postID))
	if err != nil {
		if !IsNotFoundError(err) {
			log.Error("failed to update comment",
				slog.String("error", err.Error()),
				slog.String("comment_id", id))
		}
		return nil, mapEntityError(err, store.ErrCommentNotFound)
	}

	log.Debug("comment updated", slog.String("comment_id", id))
	return updated, nil
}

// Delete implements store.CommentStore.Delete.
// Returns store.ErrCommentNotFound unless the comment exists under postID.
func (s *PostgresCommentStore) Delete(ctx context.Context, postID, id string) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !validIDs(postID, id) {
		return nil, store.ErrCommentNotFound
	}

	query := `DELETE FROM comments WHERE id = $1 AND post_id = $2 RETURNING ` + commentColumns

	deleted, err := scanComment(s.db.QueryRowContext(ctx, query, id, postID))
	if err != nil {
		if !IsNotFoundError(err) {
			log.Error("failed to delete comment",
				slog.String("error", err.Error()),
				slog.String("comment_id", id))
		}
		return nil, mapEntityError(err, store.ErrCommentNotFound)
	}

	log.Info("comment deleted", slog.String("comment_id", id))
	return deleted, nil
}

func validIDs(ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var comment domain.Comment
	if err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.Content,
		&comment.Email,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &comment, nil
}
