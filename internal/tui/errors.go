// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/driver-records/internal/form"
	"github.com/MKhiriev/driver-records/internal/service"
	"github.com/MKhiriev/driver-records/internal/store"
)

// humanizeError turns client errors into a short status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return "record no longer exists"
	case errors.Is(err, store.ErrInvalidRecordID):
		return "invalid record id"
	case errors.Is(err, service.ErrServerUnavailable):
		return "server failed to process the request"
	}

	var httpErr *form.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unavailable"
	}

	return err.Error()
}
