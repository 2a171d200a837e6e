package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMalformedResponse   = errors.New("malformed upstream response")
	ErrInvalidInput        = errors.New("invalid input")
	ErrMissingParameter    = errors.New("missing parameter")
	ErrNotFound            = errors.New("not found")
)

// UpstreamError is returned when a request to the pool API fails or answers with a non-2xx status.
// It matches ErrNotFound for 404 responses and ErrUpstreamUnavailable otherwise.
type UpstreamError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("upstream %s: status %d %s", e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *UpstreamError) Unwrap() []error {
	kind := ErrUpstreamUnavailable
	if e.StatusCode == http.StatusNotFound {
		kind = ErrNotFound
	}
	if e.Err != nil {
		return []error{kind, e.Err}
	}
	return []error{kind}
}
