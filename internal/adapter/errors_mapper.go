package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// maxMessageLen caps upstream bodies quoted in error messages.
const maxMessageLen = 512

// upstreamMessagePaths are tried in order to explain a failed upstream call.
var upstreamMessagePaths = []string{"message", "error.message", "error", "title", "detail"}

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

func mapUpstreamError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	return &UpstreamError{
		StatusCode: resp.StatusCode(),
		Message:    extractMessage(resp.Body(), upstreamMessagePaths...),
		Err:        ErrUpstreamStatus,
	}
}

// mapHTTPError maps a relay response to the client-side sentinels. The relay
// always answers failures with {"error": "..."}.
func mapHTTPError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	msg := extractMessage(resp.Body(), "error")
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRelayFailed, resp.StatusCode(), msg)
	}
}

// extractMessage returns the first non-empty string found at paths in a JSON
// body, or the trimmed body text when it is not JSON.
func extractMessage(body []byte, paths ...string) string {
	if gjson.ValidBytes(body) {
		for _, path := range paths {
			if v := gjson.GetBytes(body, path); v.Type == gjson.String && strings.TrimSpace(v.Str) != "" {
				return strings.TrimSpace(v.Str)
			}
		}
		return ""
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxMessageLen {
		cut := maxMessageLen
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return msg
}
