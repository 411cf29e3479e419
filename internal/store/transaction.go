package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/blog-api/internal/platform/logger"
)

// TxFn runs statements on tx. Returning an error rolls the transaction back.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction runs fn in a transaction opened on db and commits when fn
// succeeds. Begin and commit failures wrap ErrTransactionFailed together with
// the driver error. A panic in fn rolls back and is re-raised.
func RunInTransaction(ctx context.Context, db TxBeginner, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", "error", err)
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback after panic failed", "error", rbErr, "panic", p)
		} else {
			log.Error("rolled back transaction after panic", "panic", p)
		}
		// ALLOW-PANIC: re-raise after rollback
		panic(p)
	}()

	if fnErr := fn(ctx, tx); fnErr != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction",
				"rollback_error", rbErr,
				"error", fnErr)
			return fmt.Errorf("rollback: %w (after: %w)", rbErr, fnErr)
		}
		log.Debug("rolled back transaction", "error", fnErr)
		return fnErr
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", "error", err)
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}

	log.Debug("transaction committed")
	return nil
}
