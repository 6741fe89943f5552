package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUpstreamStatus    = errors.New("upstream returned an error status")
	ErrUpstreamTransport = errors.New("upstream request failed")

	ErrBadRequest   = errors.New("relay rejected the request")
	ErrUnauthorized = errors.New("relay rejected the credentials")
	ErrNotFound     = errors.New("relay route not found")
	ErrRelayFailed  = errors.New("relay failed to serve the request")
)

// UpstreamError reports a failed call to the research API. StatusCode is
// zero for transport failures; Message carries the upstream explanation when
// the response had one.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("upstream status %d", e.StatusCode)
	default:
		return fmt.Sprintf("upstream: %v", e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
