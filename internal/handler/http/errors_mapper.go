package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/driver-records/internal/app"
	"github.com/MKhiriev/driver-records/internal/service"
	"github.com/MKhiriev/driver-records/internal/store"
)

// errorStatuses is checked in order; the first matching sentinel wins.
var errorStatuses = []struct {
	target  error
	status  int
	message string
}{
	{service.ErrValidationNoRecordID, http.StatusBadRequest, app.MsgNoRecordID},
	{service.ErrValidationNoRecordFields, http.StatusBadRequest, app.MsgNoRecordFields},
	{service.ErrValidationEmptyPatch, http.StatusBadRequest, app.MsgEmptyPatch},

	{store.ErrInvalidRecordID, http.StatusBadRequest, app.MsgInvalidRecordID},
	{store.ErrRecordNotFound, http.StatusNotFound, app.MsgRecordNotFound},
	{store.ErrRecordAlreadyExists, http.StatusConflict, app.MsgRecordAlreadyExists},
}

// statusFromError returns the HTTP status and the plain-text body for err.
func statusFromError(err error) (int, string) {
	for _, candidate := range errorStatuses {
		if errors.Is(err, candidate.target) {
			return candidate.status, candidate.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status, message := statusFromError(err)
	http.Error(w, message, status)
}
