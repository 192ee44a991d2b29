package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/migrations"
)

// DB wraps a *sql.DB together with the dialect specific pieces the SQL
// record repository needs.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	// dialect is the goose dialect used for migrations.
	dialect string
	// placeholder is the squirrel placeholder format of the driver.
	placeholder sq.PlaceholderFormat
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify runs err through the configured classifier. Drivers without a
// classifier leave every error unclassified.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

func (db *DB) isRetryable(err error) bool {
	return db.classify(err) == Retryable
}

// domainError returns the store sentinel err stands for, or nil.
func (db *DB) domainError(err error) error {
	return db.classify(err).Err()
}
