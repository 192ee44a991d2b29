package service

import (
	"context"

	"github.com/MKhiriev/driver-records/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientRecordService is the client-side use case layer behind the record
// list screen. Errors returned by the server adapter are translated into the
// service and store sentinels so the UI can react with [errors.Is].
type ClientRecordService interface {
	// List returns every record known to the server.
	List(ctx context.Context) ([]models.Record, error)

	// Delete removes the record identified by id on the server.
	Delete(ctx context.Context, id string) (models.OperationResult, error)

	// ServerVersion returns the version string the server reports.
	ServerVersion(ctx context.Context) (string, error)
}
