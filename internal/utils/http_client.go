package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30*time.Second, "")
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own connection pool.
//
// A non-zero timeout bounds every request. A non-empty userAgent is sent as
// the User-Agent header of every request.
//
// Automatic retries stay disabled (resty's default retry count is zero);
// callers that need a retry policy must configure it explicitly.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
