package models

// OperationResult confirms an update or delete of a single record.
// Counters that do not apply to the operation are omitted from JSON.
type OperationResult struct {
	// ID is the identifier of the record the operation targeted.
	ID string `json:"id"`

	// MatchedCount is the number of records matched by an update.
	MatchedCount int64 `json:"matched_count,omitempty"`

	// ModifiedCount is the number of records changed by an update.
	ModifiedCount int64 `json:"modified_count,omitempty"`

	// DeletedCount is the number of records removed by a delete.
	DeletedCount int64 `json:"deleted_count,omitempty"`
}
