// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the relay's request orchestration.
//
// A relay cycle validates the caller request, launches a browser session,
// opens the research page, obtains a challenge token, assembles the upstream
// payload and posts it. Each cycle owns its session and token; nothing is
// shared or reused between requests.
package service

import (
	"context"

	"github.com/MKhiriev/trademark-relay/models"
)

// ResearchService runs relay cycles. Both methods return the upstream JSON
// body verbatim.
type ResearchService interface {
	Search(ctx context.Context, req models.SearchRequest) ([]byte, error)
	FileDetails(ctx context.Context, req models.FileDetailRequest) ([]byte, error)
}

// ResearchServiceWrapper defines middleware composition for ResearchService.
// Implementations wrap an existing ResearchService to add behavior such as
// metrics.
type ResearchServiceWrapper interface {
	Wrap(ResearchService) ResearchService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
