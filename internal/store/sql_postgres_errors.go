package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repository what a failed statement means.
type ErrorClassification int

const (
	// Unclassified errors are wrapped into the generic query sentinels.
	Unclassified ErrorClassification = iota

	// Retryable marks transient failures: lost connections, deadlocks,
	// serialization failures.
	Retryable

	// InvalidRecordID marks an id the column type cannot represent.
	InvalidRecordID

	// DuplicateRecord marks a primary key collision.
	DuplicateRecord
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] over pgconn error codes.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.InvalidTextRepresentation:
		return InvalidRecordID
	case pgerrcode.UniqueViolation:
		return DuplicateRecord
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable
	}

	return Unclassified
}

// Err returns the store sentinel for classifications with domain meaning and
// nil for the rest.
func (c ErrorClassification) Err() error {
	switch c {
	case InvalidRecordID:
		return ErrInvalidRecordID
	case DuplicateRecord:
		return ErrRecordAlreadyExists
	}
	return nil
}
