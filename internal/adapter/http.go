package adapter

import (
	"context"
	"errors"
	"math"

	"github.com/MKhiriev/trademark-relay/internal/config"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/utils"
	"github.com/MKhiriev/trademark-relay/models"
	"golang.org/x/time/rate"
)

type httpResearchAdapter struct {
	client *utils.HTTPClient

	apiURL  string
	origin  string
	referer string

	// limiter is nil when upstream calls are not rate limited.
	limiter *rate.Limiter
}

// NewHTTPResearchAdapter constructs the resty-backed [ResearchAdapter].
// userAgent should match the browser the token was obtained with.
func NewHTTPResearchAdapter(cfg config.Upstream, userAgent string) ResearchAdapter {
	a := &httpResearchAdapter{
		client:  utils.NewHTTPClient(cfg.Timeout, userAgent),
		apiURL:  cfg.APIURL,
		origin:  cfg.Origin,
		referer: cfg.Referer,
	}
	if cfg.RateLimit > 0 {
		burst := int(math.Max(1, math.Ceil(cfg.RateLimit)))
		a.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return a
}

// Research implements [ResearchAdapter]. The Origin and Referer headers are
// required: the research API rejects calls that do not look same-origin.
func (h *httpResearchAdapter) Research(ctx context.Context, payload models.ResearchPayload) ([]byte, error) {
	log := logger.FromContext(ctx)

	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return nil, &UpstreamError{Err: errors.Join(ErrUpstreamTransport, err)}
		}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Origin", h.origin).
		SetHeader("Referer", h.referer).
		SetBody(payload).
		Post(h.apiURL)
	if err != nil {
		return nil, &UpstreamError{Err: errors.Join(ErrUpstreamTransport, err)}
	}

	log.Debug().
		Str("type", payload.ResearchType()).
		Int("status", resp.StatusCode()).
		Dur("upstream_duration", resp.Time()).
		Msg("research API answered")

	if err = mapUpstreamError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
