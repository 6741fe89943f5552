// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP transports of the relay.
//
// [ResearchAdapter] posts assembled payloads to the upstream research API on
// behalf of the relay server. [RelayAdapter] is the terminal client's view of
// the relay itself.
//
// Upstream failures are reported as [*UpstreamError] so the service layer can
// tell them apart from browser and challenge failures with [errors.As].
// Relay failures seen by the client are mapped from HTTP status codes to the
// sentinel values in errors.go.
package adapter

import (
	"context"

	"github.com/MKhiriev/trademark-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ResearchAdapter submits one payload to the upstream research API.
type ResearchAdapter interface {
	// Research posts payload and returns the upstream response body verbatim
	// on a 2xx status. Non-2xx responses and transport failures are returned
	// as [*UpstreamError]. Nothing is retried.
	Research(ctx context.Context, payload models.ResearchPayload) ([]byte, error)
}
