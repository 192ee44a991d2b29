package store

import (
	"context"

	"github.com/MKhiriev/driver-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStorage persists driver records. Implementations exist for MongoDB,
// PostgreSQL and SQLite.
//
// Get, Update and Delete return [ErrRecordNotFound] when no record has the
// given id and [ErrInvalidRecordID] when the id cannot be interpreted by the
// backend.
type RecordStorage interface {
	List(ctx context.Context) ([]models.Record, error)
	Get(ctx context.Context, id string) (models.Record, error)
	// Create stores the record under a new backend-assigned id. Any id
	// already present on record is ignored.
	Create(ctx context.Context, record models.Record) (models.Record, error)
	// Update sets only the non-nil fields of patch.
	Update(ctx context.Context, id string, patch models.RecordPatch) (models.OperationResult, error)
	Delete(ctx context.Context, id string) (models.OperationResult, error)
}
