// Package browser drives a headless Chrome page for the relay.
//
// Two drivers implement the same [Launcher] contract: chromedp (default) and
// go-rod. A [Session] is owned by exactly one request and must be closed
// exactly once; Close is idempotent so deferred and explicit calls are safe.
package browser

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/browser_mock.go -package=mock

// Page is the subset of page automation the relay needs.
//
// Scripts passed to Evaluate and WaitFor must be single JavaScript
// expressions. Evaluate awaits a returned promise and decodes its value
// into out; out may be nil to discard the result.
type Page interface {
	Navigate(ctx context.Context, url string) error
	HTML(ctx context.Context) (string, error)
	Evaluate(ctx context.Context, script string, out any) error
	WaitFor(ctx context.Context, predicate string, timeout time.Duration) error
}

// Session is a launched browser with a single open page.
type Session interface {
	Page

	// Close terminates the browser process and frees its resources.
	Close() error
}

// Launcher starts browser sessions.
type Launcher interface {
	Launch(ctx context.Context) (Session, error)
}
