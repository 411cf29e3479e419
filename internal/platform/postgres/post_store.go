package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

const postColumns = "id, title, content, email, created_at, updated_at"

// searchableColumns lists the post columns a search filter may reference.
// Column names are interpolated into SQL, so anything else is rejected.
var searchableColumns = map[string]bool{
	"title":   true,
	"content": true,
}

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// When db can begin transactions, Delete removes a post and its comments atomically.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// List implements store.PostStore.List, newest first.
func (s *PostgresPostStore) List(ctx context.Context) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`
	return s.queryPosts(ctx, s.db, "list posts", query)
}

// Search implements store.PostStore.Search.
// Each filter term becomes a parameterized ILIKE clause and the clauses are ORed.
func (s *PostgresPostStore) Search(ctx context.Context, filter store.OrFilter) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(filter) == 0 {
		return nil, fmt.Errorf("%w: empty search filter", store.ErrInvalidEntity)
	}

	clauses := make([]string, 0, len(filter))
	args := make([]any, 0, len(filter))
	for i, cond := range filter {
		if !searchableColumns[cond.Column] {
			log.Warn("rejected search column", slog.String("column", cond.Column))
			return nil, fmt.Errorf("%w: column %q is not searchable", store.ErrInvalidEntity, cond.Column)
		}
		clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", cond.Column, i+1))
		args = append(args, cond.Pattern)
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE ` +
		strings.Join(clauses, " OR ") + ` ORDER BY created_at DESC`

	log.Debug("searching posts", slog.String("filter", filter.String()))
	return s.queryPosts(ctx, s.db, "search posts", query, args...)
}

// GetByID implements store.PostStore.GetByID.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		log.Debug("post id is not a uuid", slog.String("post_id", id))
		return nil, store.ErrPostNotFound
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("post not found", slog.String("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id))
		return nil, MapError(err)
	}

	return post, nil
}

// Create implements store.PostStore.Create.
// ID and timestamps are assigned by the database.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO posts (title, content, email)
		VALUES ($1, $2, $3)
		RETURNING ` + postColumns

	created, err := scanPost(s.db.QueryRowContext(ctx, query, post.Title, post.Content, post.Email))
	if err != nil {
		log.Error("failed to create post", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("post created successfully", slog.String("post_id", created.ID))
	return created, nil
}

// Update implements store.PostStore.Update.
// Only non-nil patch fields are written. The result is empty when no post matched.
func (s *PostgresPostStore) Update(ctx context.Context, id string, patch domain.PostPatch) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		log.Warn("post patch validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	if _, err := uuid.Parse(id); err != nil {
		return []domain.Post{}, nil
	}

	query := `
		UPDATE posts
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    updated_at = $3
		WHERE id = $4
		RETURNING ` + postColumns

	updated, err := s.queryPosts(ctx, s.db, "update post", query,
		patch.Title, patch.Content, patch.UpdatedAt, id)
	if err != nil {
		return nil, err
	}

	log.Debug("post update finished",
		slog.String("post_id", id),
		slog.Int("rows", len(updated)))
	return updated, nil
}

// Delete implements store.PostStore.Delete.
// Comments on the post are removed in the same transaction.
// The result is empty when no post matched.
func (s *PostgresPostStore) Delete(ctx context.Context, id string) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return []domain.Post{}, nil
	}

	var deleted []domain.Post
	run := func(ctx context.Context, db store.DBTX) error {
		if _, err := db.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
			log.Error("failed to delete post comments",
				slog.String("error", err.Error()),
				slog.String("post_id", id))
			return MapError(err)
		}

		query := `DELETE FROM posts WHERE id = $1 RETURNING ` + postColumns
		rows, err := s.queryPosts(ctx, db, "delete post", query, id)
		if err != nil {
			return err
		}
		deleted = rows
		return nil
	}

	if beginner, ok := s.db.(store.TxBeginner); ok {
		err := store.RunInTransaction(ctx, beginner, func(ctx context.Context, tx *sql.Tx) error {
			return run(ctx, tx)
		})
		if err != nil {
			return nil, err
		}
	} else if err := run(ctx, s.db); err != nil {
		return nil, err
	}

	log.Info("post delete finished",
		slog.String("post_id", id),
		slog.Int("rows", len(deleted)))
	return deleted, nil
}

func (s *PostgresPostStore) queryPosts(
	ctx context.Context,
	db store.DBTX,
	op string,
	query string,
	args ...any,
) ([]domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to "+op, slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating post rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return posts, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var post domain.Post
	if err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Email,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}
