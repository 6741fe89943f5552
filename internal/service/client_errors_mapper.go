package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/trademark-relay/internal/adapter"
)

// mapAdapterError translates a relay adapter error into a client error that
// keeps the relay's explanation.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrRelayRejected, msg)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %s", ErrRelayUnauthorized, msg)
	case errors.Is(err, adapter.ErrRelayFailed), errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrRelayFailed, msg)
	}

	return fmt.Errorf("%w: %v", ErrRelayUnreachable, err)
}

// extractBody extracts the body from a message of the form "<sentinel>: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
