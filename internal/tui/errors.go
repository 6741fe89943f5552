// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/trademark-relay/internal/service"
)

// humanizeError turns relay client errors into a line fit for the error
// overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrRelayUnreachable):
		s := strings.ToLower(err.Error())
		if strings.Contains(s, "deadline exceeded") || strings.Contains(s, "timeout") {
			return "The relay did not answer in time. Challenge solving can take a while; try again."
		}
		return "Relay is unreachable. Check CLIENT_SERVER_URL and that the relay is running."
	case errors.Is(err, service.ErrRelayUnauthorized):
		return "Relay rejected the client token. Check CLIENT_AUTH_SIGN_KEY and CLIENT_AUTH_ISSUER."
	case errors.Is(err, service.ErrNoResults):
		return "The relay answered, but no result list was found in the response."
	}

	return err.Error()
}
