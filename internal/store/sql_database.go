package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/game-stats/internal/logger"
	"github.com/MKhiriev/game-stats/migrations"
)

// DB is a database handle shared by the repositories of one service.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened *sql.DB. Used by tests and by callers that
// manage the connection themselves.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Classify reports whether err, returned by an operation on db, is worth
// retrying.
func (db *DB) Classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}
