package form

import (
	"errors"
	"fmt"
)

var (
	// ErrFormClosed is returned once the form has navigated away.
	ErrFormClosed = errors.New("form is closed")

	// ErrFormBusy is returned while a load or submit is in flight.
	ErrFormBusy = errors.New("form is busy")
)

// HTTPError reports a non-success status answered by the server.
type HTTPError struct {
	Status int
	cause  error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error! status: %d", e.Status)
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}
