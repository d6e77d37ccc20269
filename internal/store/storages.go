package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Checksums is the ledger of last synced checksums.
	Checksums ChecksumStore
	// Objects holds the clear-text domain entities.
	Objects LocalObjectRepository
	// Cursors holds the per-scope sync cursors.
	Cursors CursorRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on the shared connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Checksums: NewSQLiteChecksumStore(db, logger),
		Objects:   NewLocalObjectRepository(db, logger),
		Cursors:   NewCursorRepository(db, logger),
		db:        db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ServerStorages groups the repositories of the reference object API.
type ServerStorages struct {
	Objects ObjectRepository
	Blobs   BlobRepository
}

// NewServerStorages returns in-memory server repositories.
func NewServerStorages() *ServerStorages {
	return &ServerStorages{
		Objects: NewMemoryObjectRepository(),
		Blobs:   NewMemoryBlobRepository(),
	}
}
