package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	countChecksums = `SELECT COUNT(*) FROM checksums`

	getCursor = `SELECT synced_at FROM sync_cursors WHERE scope = ?`

	upsertCursor = `INSERT INTO sync_cursors (scope, synced_at) VALUES (?, ?)
		ON CONFLICT(scope) DO UPDATE SET synced_at = excluded.synced_at`

	deleteCursors = `DELETE FROM sync_cursors`

	upsertLocalObjectSuffix = `ON CONFLICT(id) DO UPDATE SET
		object_type = excluded.object_type,
		payload = excluded.payload,
		created_at = excluded.created_at,
		updated_at = excluded.updated_at,
		deleted_at = excluded.deleted_at`
)

// inTx runs fn in a transaction, committing on success and rolling back on
// any error.
func (db *DB) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
