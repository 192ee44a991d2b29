package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no record matches the requested id.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrInvalidRecordID is returned when the id is not a valid identifier
	// for the backend (a malformed ObjectID hex for MongoDB, a malformed UUID
	// for PostgreSQL).
	ErrInvalidRecordID = errors.New("invalid record id")

	// ErrRecordAlreadyExists is returned when an INSERT collides with an
	// existing primary key.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrRecordNotSaved is returned when an INSERT completes without error
	// but no row was affected.
	ErrRecordNotSaved = errors.New("record was not saved")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan record rows")

	// ErrDecodingDocument is returned when a MongoDB document cannot be
	// decoded into a record.
	ErrDecodingDocument = errors.New("failed to decode record document")
)
