package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-object-sync/internal/logger"
)

type cursorRepository struct {
	*DB
	logger *logger.Logger
}

// NewCursorRepository returns the sqlite [CursorRepository].
func NewCursorRepository(db *DB, logger *logger.Logger) CursorRepository {
	return &cursorRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *cursorRepository) GetCursor(ctx context.Context, scope string) (time.Time, error) {
	var ts time.Time
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.GetContext(ctx, &ts, getCursor, scope)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cursorRepository.GetCursor").
			Str("scope", scope).
			Msg("failed to query sync cursor")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ts.UTC(), nil
}

func (r *cursorRepository) SetCursor(ctx context.Context, scope string, ts time.Time) error {
	err := r.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.DB.ExecContext(ctx, upsertCursor, scope, ts.UTC())
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cursorRepository.SetCursor").
			Str("scope", scope).
			Msg("failed to upsert sync cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *cursorRepository) DeleteCursors(ctx context.Context) error {
	err := r.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.DB.ExecContext(ctx, deleteCursors)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cursorRepository.DeleteCursors").
			Msg("failed to delete sync cursors")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
