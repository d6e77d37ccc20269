// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

const (
	// inQueryChunkSize bounds the ids bound in one IN (...) clause.
	inQueryChunkSize = 500
	// upsertChunkSize bounds the rows of one multi-row INSERT.
	upsertChunkSize = 100
)

var checksumColumns = []string{"id", "object_type", "previous_checksum", "data_sent", "updated_at"}

const upsertChecksumSuffix = `ON CONFLICT(id) DO UPDATE SET
	object_type = excluded.object_type,
	previous_checksum = excluded.previous_checksum,
	data_sent = excluded.data_sent,
	updated_at = excluded.updated_at`

type sqliteChecksumStore struct {
	*DB
	locks  keyLocks
	logger *logger.Logger
}

// NewSQLiteChecksumStore returns a [ChecksumStore] backed by the checksums table.
func NewSQLiteChecksumStore(db *DB, logger *logger.Logger) ChecksumStore {
	return &sqliteChecksumStore{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteChecksumStore) Get(ctx context.Context, id string) (models.ChecksumRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(checksumColumns...).From("checksums").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.ChecksumRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.ChecksumRecord
	err = s.withRetry(ctx, func(ctx context.Context) error {
		return s.DB.GetContext(ctx, &record, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChecksumRecord{}, ErrChecksumNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteChecksumStore.Get").
			Str("object_id", id).
			Msg("failed to query checksum record")
		return models.ChecksumRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

func (s *sqliteChecksumStore) GetMany(ctx context.Context, ids []string) (map[string]models.ChecksumRecord, error) {
	log := logger.FromContext(ctx)
	result := make(map[string]models.ChecksumRecord, len(ids))

	for start := 0; start < len(ids); start += inQueryChunkSize {
		end := min(start+inQueryChunkSize, len(ids))

		query, args, err := sq.Select(checksumColumns...).
			From("checksums").
			Where(sq.Eq{"id": ids[start:end]}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var records []models.ChecksumRecord
		err = s.withRetry(ctx, func(ctx context.Context) error {
			records = records[:0]
			return s.DB.SelectContext(ctx, &records, query, args...)
		})
		if err != nil {
			log.Err(err).
				Str("func", "sqliteChecksumStore.GetMany").
				Int("ids", end-start).
				Msg("failed to query checksum records")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		for _, r := range records {
			result[r.ID] = r
		}
	}

	return result, nil
}

func (s *sqliteChecksumStore) GetByType(ctx context.Context, objectType models.ObjectType) ([]models.ChecksumRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(checksumColumns...).
		From("checksums").
		Where(sq.Eq{"object_type": objectType}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var records []models.ChecksumRecord
	err = s.withRetry(ctx, func(ctx context.Context) error {
		records = records[:0]
		return s.DB.SelectContext(ctx, &records, query, args...)
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqliteChecksumStore.GetByType").
			Str("object_type", string(objectType)).
			Msg("failed to query checksum records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return records, nil
}

func (s *sqliteChecksumStore) Set(ctx context.Context, record models.ChecksumRecord) error {
	return s.SetMany(ctx, []models.ChecksumRecord{record})
}

func (s *sqliteChecksumStore) SetMany(ctx context.Context, records []models.ChecksumRecord) error {
	if len(records) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	unlock := s.locks.lock(ids...)
	defer unlock()

	now := time.Now().UTC()
	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.inTx(ctx, func(tx *sqlx.Tx) error {
			for start := 0; start < len(records); start += upsertChunkSize {
				end := min(start+upsertChunkSize, len(records))

				builder := sq.Insert("checksums").Columns(checksumColumns...)
				for _, r := range records[start:end] {
					updatedAt := r.UpdatedAt
					if updatedAt.IsZero() {
						updatedAt = now
					}
					builder = builder.Values(r.ID, r.Type, r.PreviousChecksum, r.DataSent, updatedAt)
				}

				query, args, err := builder.Suffix(upsertChecksumSuffix).ToSql()
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
			Str("func", "sqliteChecksumStore.SetMany").
			Int("records", len(records)).
			Msg("failed to upsert checksum records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteChecksumStore) Delete(ctx context.Context, id string) error {
	return s.DeleteMany(ctx, []string{id})
}

func (s *sqliteChecksumStore) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	unlock := s.locks.lock(ids...)
	defer unlock()

	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.inTx(ctx, func(tx *sqlx.Tx) error {
			for start := 0; start < len(ids); start += inQueryChunkSize {
				end := min(start+inQueryChunkSize, len(ids))

				query, args, err := sq.Delete("checksums").Where(sq.Eq{"id": ids[start:end]}).ToSql()
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
			Str("func", "sqliteChecksumStore.DeleteMany").
			Int("ids", len(ids)).
			Msg("failed to delete checksum records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteChecksumStore) DeleteAll(ctx context.Context, objectType models.ObjectType) error {
	log := logger.FromContext(ctx)

	unlock := s.locks.lockAll()
	defer unlock()

	builder := sq.Delete("checksums")
	if objectType != "" {
		builder = builder.Where(sq.Eq{"object_type": objectType})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqliteChecksumStore.DeleteAll").
			Str("object_type", string(objectType)).
			Msg("failed to delete checksum records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteChecksumStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.DB.GetContext(ctx, &count, countChecksums)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteChecksumStore.Count").
			Msg("failed to count checksum records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
