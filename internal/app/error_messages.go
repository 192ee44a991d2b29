// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the record
// server handlers and the client error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording on both sides of the
// wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidRecordID is returned when the id in the path cannot be
	// interpreted by the storage backend.
	MsgInvalidRecordID = "invalid record id"

	// MsgNoRecordID is returned when the id path segment is blank.
	MsgNoRecordID = "no record id provided"

	// MsgRecordNotFound is returned when a read, update, or delete operation
	// targets a record that does not exist.
	MsgRecordNotFound = "record not found"

	// MsgNoRecordFields is returned when a create request carries none of
	// name, type or level.
	MsgNoRecordFields = "no record fields provided"

	// MsgEmptyPatch is returned when an update request changes nothing.
	MsgEmptyPatch = "no fields to update"

	// MsgRecordAlreadyExists is returned when a create collides with an
	// existing id.
	MsgRecordAlreadyExists = "record already exists"
)
