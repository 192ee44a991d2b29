package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/driver-records/internal/app"
	"github.com/MKhiriev/driver-records/internal/service"
	"github.com/MKhiriev/driver-records/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"no record id", service.ErrValidationNoRecordID, http.StatusBadRequest, app.MsgNoRecordID},
		{"no record fields", service.ErrValidationNoRecordFields, http.StatusBadRequest, app.MsgNoRecordFields},
		{"empty patch", service.ErrValidationEmptyPatch, http.StatusBadRequest, app.MsgEmptyPatch},
		{"invalid id", store.ErrInvalidRecordID, http.StatusBadRequest, app.MsgInvalidRecordID},
		{"not found", store.ErrRecordNotFound, http.StatusNotFound, app.MsgRecordNotFound},
		{"already exists", store.ErrRecordAlreadyExists, http.StatusConflict, app.MsgRecordAlreadyExists},
		{"wrapped not found", fmt.Errorf("repo: %w", store.ErrRecordNotFound), http.StatusNotFound, app.MsgRecordNotFound},
		{"query error", store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("unknown"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
