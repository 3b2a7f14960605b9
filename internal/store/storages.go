package store

import (
	"context"
	"fmt"

	"github.com/avstepanov/docvault/internal/config"
	"github.com/avstepanov/docvault/internal/logger"
)

// Storages groups the persistence backends of the vault into a single value
// that can be passed around the service layer: the SQLite-backed record
// repository and the filesystem store holding the PDF payloads.
type Storages struct {
	// Documents is the repository for document metadata records.
	Documents DocumentRepository

	// Files is the filesystem store for the binary PDF payloads.
	Files DocumentFileStorage
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to a fresh [DocumentRepository]
//     and a [DocumentFileStorage] rooted at cfg.Files.VaultDir.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Documents: NewDocumentRepository(db, logger),
		Files:     NewDocumentFileStorage(cfg.Files.VaultDir, logger),
	}, nil
}
