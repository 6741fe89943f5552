package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/trademark-relay/internal/browser"
	"github.com/MKhiriev/trademark-relay/internal/logger"
)

const strategySelf = "self"

// libraryReadyPredicate is true once the challenge library has loaded.
const libraryReadyPredicate = "window.grecaptcha !== undefined"

// SelfExtractor asks the page's own score-based challenge library for a
// token, using the site key the page loads the library with.
type SelfExtractor struct {
	action      string
	waitTimeout time.Duration
}

// NewSelfExtractor returns a SelfExtractor executing action and waiting up
// to waitTimeout for the library to load.
func NewSelfExtractor(action string, waitTimeout time.Duration) *SelfExtractor {
	return &SelfExtractor{action: action, waitTimeout: waitTimeout}
}

func (s *SelfExtractor) Acquire(ctx context.Context, page browser.Page) (string, error) {
	log := logger.FromContext(ctx)

	html, err := page.HTML(ctx)
	if err != nil {
		return "", err
	}

	siteKey, ok := FindRenderKey(html)
	if !ok {
		return "", &TokenAcquisitionError{Strategy: strategySelf, Err: ErrSiteKeyNotFound}
	}
	log.Debug().Str("site_key", siteKey).Msg("found challenge site key")

	if err := page.WaitFor(ctx, libraryReadyPredicate, s.waitTimeout); err != nil {
		if errors.Is(err, browser.ErrWaitTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{What: "challenge library", After: s.waitTimeout, Err: err}
		}
		return "", err
	}

	script, err := executeScript(siteKey, s.action)
	if err != nil {
		return "", &TokenAcquisitionError{Strategy: strategySelf, Err: err}
	}

	var token string
	if err := page.Evaluate(ctx, script, &token); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{What: "challenge execution", Err: err}
		}
		return "", err
	}
	if strings.TrimSpace(token) == "" {
		return "", &TokenAcquisitionError{Strategy: strategySelf, Err: ErrEmptyToken}
	}

	return token, nil
}

// executeScript builds the expression resolving to a fresh token for key.
// Arguments are JSON encoded so they cannot break out of the literals.
func executeScript(siteKey, action string) (string, error) {
	key, err := json.Marshal(siteKey)
	if err != nil {
		return "", err
	}
	opts, err := json.Marshal(map[string]string{"action": action})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`new Promise((resolve, reject) => {
  grecaptcha.ready(() => {
    grecaptcha.execute(%s, %s).then(resolve, reject);
  });
})`, key, opts), nil
}
