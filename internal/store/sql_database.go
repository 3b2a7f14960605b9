package store

import (
	"database/sql"

	"github.com/avstepanov/docvault/internal/logger"
	"github.com/avstepanov/docvault/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
