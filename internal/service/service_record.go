package service

import (
	"context"

	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/store"
	"github.com/MKhiriev/driver-records/models"
)

type recordService struct {
	recordStorage store.RecordStorage

	logger *logger.Logger
}

func NewRecordService(recordStorage store.RecordStorage, logger *logger.Logger) RecordService {
	return &recordService{
		recordStorage: recordStorage,
		logger:        logger,
	}
}

func (s *recordService) List(ctx context.Context) ([]models.Record, error) {
	return s.recordStorage.List(ctx)
}

func (s *recordService) Get(ctx context.Context, id string) (models.Record, error) {
	return s.recordStorage.Get(ctx, id)
}

func (s *recordService) Create(ctx context.Context, record models.Record) (models.Record, error) {
	return s.recordStorage.Create(ctx, record)
}

func (s *recordService) Update(ctx context.Context, id string, patch models.RecordPatch) (models.OperationResult, error) {
	return s.recordStorage.Update(ctx, id, patch)
}

func (s *recordService) Delete(ctx context.Context, id string) (models.OperationResult, error) {
	return s.recordStorage.Delete(ctx, id)
}
