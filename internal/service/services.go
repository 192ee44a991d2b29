package service

import (
	"fmt"

	"github.com/MKhiriev/driver-records/internal/config"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/store"
)

type Services struct {
	RecordService  RecordService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	recordService := NewRecordValidationService().
		Wrap(NewRecordService(storages.RecordStorage, logger))

	return &Services{
		RecordService:  recordService,
		AppInfoService: appInfoService,
	}, nil
}
