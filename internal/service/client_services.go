package service

import (
	"github.com/MKhiriev/driver-records/internal/adapter"
	"github.com/MKhiriev/driver-records/internal/logger"
)

type ClientServices struct {
	RecordService ClientRecordService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		RecordService: NewClientRecordService(serverAdapter, logger),
	}
}
