package store

import (
	"context"
	"path/filepath"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newTestSQLite opens a migrated sqlite file under t.TempDir().
func newTestSQLite(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(testContext(), config.ClientDB{DSN: filepath.Join(t.TempDir(), "sync.db")}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })
	return db
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return &DB{
		DB:                 sqlx.NewDb(raw, "sqlmock"),
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}
