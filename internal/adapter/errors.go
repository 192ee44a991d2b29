package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrEmptyBody is returned when a successful GET carries no object.
	ErrEmptyBody = errors.New("empty response body")

	ErrInvalidAddress = errors.New("invalid adapter http address")
)

// StatusError carries the HTTP status code of a non-2xx answer. Known codes
// additionally match one of the sentinels above through [errors.Is].
type StatusError struct {
	Code     int
	Body     string
	sentinel error
}

// NewStatusError builds the error for a non-2xx answer with the given status
// and trimmed body.
func NewStatusError(code int, body string) *StatusError {
	statusErr := &StatusError{Code: code, Body: body}

	switch code {
	case http.StatusBadRequest:
		statusErr.sentinel = ErrBadRequest
	case http.StatusNotFound:
		statusErr.sentinel = ErrNotFound
	case http.StatusInternalServerError:
		statusErr.sentinel = ErrInternalServerError
	}

	return statusErr
}

func (e *StatusError) Error() string {
	if e.sentinel != nil {
		if e.Body == "" {
			return e.sentinel.Error()
		}
		return fmt.Sprintf("%s: %s", e.sentinel, e.Body)
	}

	body := e.Body
	if body == "" {
		body = http.StatusText(e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.Code, body)
}

func (e *StatusError) Unwrap() error {
	return e.sentinel
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a non-2xx answer.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}

// ResponseBody returns the trimmed body of a non-2xx answer carried by err.
func ResponseBody(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Body
	}
	return ""
}
