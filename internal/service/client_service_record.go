package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/driver-records/internal/adapter"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/models"
)

type clientRecordService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

func NewClientRecordService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientRecordService {
	return &clientRecordService{serverAdapter: serverAdapter, logger: logger}
}

func (c *clientRecordService) List(ctx context.Context) ([]models.Record, error) {
	records, err := c.serverAdapter.ListRecords(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "clientRecordService.List").Msg("listing records failed")
		return nil, fmt.Errorf("list records: %w", mapAdapterError(err))
	}

	return records, nil
}

func (c *clientRecordService) Delete(ctx context.Context, id string) (models.OperationResult, error) {
	result, err := c.serverAdapter.DeleteRecord(ctx, id)
	if err != nil {
		c.logger.Err(err).Str("func", "clientRecordService.Delete").Str("id", id).Msg("deleting record failed")
		return models.OperationResult{}, fmt.Errorf("delete record %q: %w", id, mapAdapterError(err))
	}

	return result, nil
}

func (c *clientRecordService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.serverAdapter.GetServerVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("get server version: %w", mapAdapterError(err))
	}

	return version, nil
}
