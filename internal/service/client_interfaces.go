package service

import (
	"context"

	"github.com/MKhiriev/trademark-relay/models"
)

// ClientRelayService is the terminal client's access to a running relay.
type ClientRelayService interface {
	// Search runs q on the relay and decodes the rows of the result.
	Search(ctx context.Context, q models.SearchQuery) (models.ResearchResult, error)

	// FileDetails looks up one application and returns its JSON indented
	// for display.
	FileDetails(ctx context.Context, applicationNo string) (string, error)

	// ServerVersion returns the relay build version.
	ServerVersion(ctx context.Context) (string, error)
}
