// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the driver-records server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services and the record form from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404). The numeric status of any non-2xx
// answer is available through [StatusCode].
package adapter

import (
	"context"

	"github.com/MKhiriev/driver-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the record
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// ListRecords fetches every stored record. An empty collection is
	// returned as an empty, non-nil slice.
	ListRecords(ctx context.Context) ([]models.Record, error)

	// GetRecord fetches a single record by id. A 404 answer yields
	// [ErrNotFound]; a success answer without a body yields [ErrEmptyBody].
	GetRecord(ctx context.Context, id string) (models.Record, error)

	// CreateRecord submits a new record. The id of the argument is never
	// sent; the server assigns one and the created record is returned.
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)

	// UpdateRecord applies patch to the record identified by id.
	UpdateRecord(ctx context.Context, id string, patch models.RecordPatch) (models.OperationResult, error)

	// DeleteRecord removes the record identified by id.
	DeleteRecord(ctx context.Context, id string) (models.OperationResult, error)

	// GetServerVersion returns the plain-text version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
