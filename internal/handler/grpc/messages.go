package grpc

import "github.com/MKhiriev/driver-records/models"

type ListRequest struct{}

type ListResponse struct {
	Records []models.Record `json:"records"`
}

type GetRequest struct {
	ID string `json:"id"`
}

type CreateRequest struct {
	Record models.Record `json:"record"`
}

type UpdateRequest struct {
	ID    string             `json:"id"`
	Patch models.RecordPatch `json:"patch"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}
