package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/models"
)

var localObjectColumns = []string{"id", "object_type", "payload", "created_at", "updated_at", "deleted_at"}

type localObjectRow struct {
	ID        string            `db:"id"`
	Type      models.ObjectType `db:"object_type"`
	Payload   []byte            `db:"payload"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
	DeletedAt *time.Time        `db:"deleted_at"`
}

func (r localObjectRow) entity() models.Entity {
	return models.Entity{
		ID:        r.ID,
		Type:      r.Type,
		Payload:   r.Payload,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: r.DeletedAt,
	}
}

type localObjectRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalObjectRepository returns the sqlite [LocalObjectRepository].
func NewLocalObjectRepository(db *DB, logger *logger.Logger) LocalObjectRepository {
	return &localObjectRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localObjectRepository) Save(ctx context.Context, entities ...models.Entity) error {
	if len(entities) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.inTx(ctx, func(tx *sqlx.Tx) error {
			for start := 0; start < len(entities); start += upsertChunkSize {
				end := min(start+upsertChunkSize, len(entities))

				builder := sq.Insert("local_objects").Columns(localObjectColumns...)
				for _, e := range entities[start:end] {
					builder = builder.Values(e.ID, e.Type, []byte(e.Payload), e.CreatedAt.UTC(), e.UpdatedAt.UTC(), utcPtr(e.DeletedAt))
				}

				query, args, err := builder.Suffix(upsertLocalObjectSuffix).ToSql()
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				if _, err = tx.ExecContext(ctx, query, args...); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "localObjectRepository.Save").
			Int("entities", len(entities)).
			Msg("failed to upsert local objects")
		return fmt.Errorf("failed to save local objects: %w", err)
	}

	return nil
}

func (r *localObjectRepository) Get(ctx context.Context, id string) (models.Entity, error) {
	query, args, err := sq.Select(localObjectColumns...).From("local_objects").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row localObjectRow
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.GetContext(ctx, &row, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entity{}, ErrObjectNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localObjectRepository.Get").
			Str("object_id", id).
			Msg("failed to query local object")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.entity(), nil
}

func (r *localObjectRepository) ListUpdatedSince(ctx context.Context, objectType models.ObjectType, since time.Time) ([]models.Entity, error) {
	builder := sq.Select(localObjectColumns...).
		From("local_objects").
		Where(sq.Eq{"object_type": objectType}).
		OrderBy("updated_at", "id")
	if !since.IsZero() {
		builder = builder.Where(sq.Gt{"updated_at": since.UTC()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []localObjectRow
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows = rows[:0]
		return r.DB.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localObjectRepository.ListUpdatedSince").
			Str("object_type", string(objectType)).
			Msg("failed to query local objects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	entities := make([]models.Entity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, row.entity())
	}
	return entities, nil
}

func (r *localObjectRepository) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.inTx(ctx, func(tx *sqlx.Tx) error {
			for start := 0; start < len(ids); start += inQueryChunkSize {
				end := min(start+inQueryChunkSize, len(ids))

				query, args, err := sq.Delete("local_objects").Where(sq.Eq{"id": ids[start:end]}).ToSql()
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				if _, err = tx.ExecContext(ctx, query, args...); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localObjectRepository.Delete").
			Int("ids", len(ids)).
			Msg("failed to delete local objects")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localObjectRepository) DeleteAll(ctx context.Context, objectType models.ObjectType) error {
	builder := sq.Delete("local_objects")
	if objectType != "" {
		builder = builder.Where(sq.Eq{"object_type": objectType})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localObjectRepository.DeleteAll").
			Str("object_type", string(objectType)).
			Msg("failed to delete local objects")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
