// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/driver-records/internal/adapter"
	"github.com/MKhiriev/driver-records/internal/app"
	"github.com/MKhiriev/driver-records/internal/store"
)

// ErrServerUnavailable is returned when the server answered 500.
var ErrServerUnavailable = errors.New("server failed to process the request")

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.ResponseBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgNoRecordID:
			return ErrValidationNoRecordID
		case app.MsgNoRecordFields:
			return ErrValidationNoRecordFields
		case app.MsgEmptyPatch:
			return ErrValidationEmptyPatch
		case app.MsgInvalidRecordID:
			return store.ErrInvalidRecordID
		}

	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, adapter.ErrEmptyBody):
		return store.ErrRecordNotFound

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerUnavailable
	}

	return err
}
