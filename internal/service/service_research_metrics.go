package service

import (
	"context"
	"time"

	"github.com/MKhiriev/trademark-relay/internal/metrics"
	"github.com/MKhiriev/trademark-relay/models"
)

// Operation labels reported to the metrics recorder.
const (
	OperationSearch      = "search"
	OperationFileDetails = "file_details"
)

// ResearchMetricsService records the outcome and duration of every relay
// cycle of the wrapped service.
type ResearchMetricsService struct {
	inner    ResearchService
	recorder metrics.Recorder
}

// NewResearchMetricsService returns a wrapper reporting to recorder.
func NewResearchMetricsService(recorder metrics.Recorder) ResearchServiceWrapper {
	if recorder == nil {
		recorder = metrics.Nop()
	}
	return &ResearchMetricsService{recorder: recorder}
}

func (m *ResearchMetricsService) Search(ctx context.Context, req models.SearchRequest) ([]byte, error) {
	defer m.recorder.RelayStarted()()

	start := time.Now()
	body, err := m.inner.Search(ctx, req)
	m.recorder.ObserveRelay(OperationSearch, string(FailedStage(err)), time.Since(start))
	return body, err
}

func (m *ResearchMetricsService) FileDetails(ctx context.Context, req models.FileDetailRequest) ([]byte, error) {
	defer m.recorder.RelayStarted()()

	start := time.Now()
	body, err := m.inner.FileDetails(ctx, req)
	m.recorder.ObserveRelay(OperationFileDetails, string(FailedStage(err)), time.Since(start))
	return body, err
}

func (m *ResearchMetricsService) Wrap(inner ResearchService) ResearchService {
	m.inner = inner
	return m
}
