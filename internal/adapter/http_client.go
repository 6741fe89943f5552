package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/trademark-relay/internal/config"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/utils"
	"github.com/MKhiriev/trademark-relay/models"
	"github.com/go-resty/resty/v2"
)

type httpRelayAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRelayAdapter constructs an HTTP implementation of [RelayAdapter].
// It normalises and validates cfg.ServerURL and bounds every call with
// cfg.RequestTimeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a URL.
func NewHTTPRelayAdapter(cfg config.ClientConfig, logger *logger.Logger) (RelayAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid relay address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout, "")
	client.SetBaseURL(baseURL)

	return &httpRelayAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRelayAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRelayAdapter) currentToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRelayAdapter) Search(ctx context.Context, req models.SearchRequest) ([]byte, error) {
	return h.postJSON(ctx, "/search", req)
}

func (h *httpRelayAdapter) FileDetails(ctx context.Context, req models.FileDetailRequest) ([]byte, error) {
	return h.postJSON(ctx, "/file-details", req)
}

func (h *httpRelayAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpRelayAdapter) postJSON(ctx context.Context, path string, body any) ([]byte, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Dur("duration", resp.Time()).
		Msg("relay answered")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpRelayAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.currentToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
