package adapter

import (
	"context"

	"github.com/MKhiriev/trademark-relay/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayAdapter talks to a running relay from the terminal client.
type RelayAdapter interface {
	// SetToken stores the bearer token attached to subsequent relay calls.
	// An empty token disables the Authorization header.
	SetToken(token string)

	// Search sends req to POST /search and returns the upstream JSON.
	Search(ctx context.Context, req models.SearchRequest) ([]byte, error)

	// FileDetails sends req to POST /file-details and returns the upstream JSON.
	FileDetails(ctx context.Context, req models.FileDetailRequest) ([]byte, error)

	// Version returns the relay build version from GET /version.
	Version(ctx context.Context) (string, error)
}
