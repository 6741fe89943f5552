// Package challenge obtains anti-bot (reCAPTCHA) tokens from a loaded
// research page.
//
// Two strategies implement [Acquirer]:
//   - [SelfExtractor] reads the site key from the page markup and asks the
//     page's own challenge library for a token;
//   - [DelegatedSolver] hands the challenge to the 2captcha solving service
//     and feeds the solution back through the page's response field.
//
// Tokens are single-use and never cached.
package challenge

import (
	"context"

	"github.com/MKhiriev/trademark-relay/internal/browser"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/challenge_mock.go -package=mock

// Acquirer produces one challenge token for a page that has already been
// navigated to the research form.
type Acquirer interface {
	Acquire(ctx context.Context, page browser.Page) (string, error)
}
