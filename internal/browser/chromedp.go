package browser

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// ChromedpLauncher starts Chrome through the DevTools protocol with chromedp.
type ChromedpLauncher struct {
	opts Options
}

// NewChromedpLauncher returns a chromedp-backed launcher.
func NewChromedpLauncher(opts Options) *ChromedpLauncher {
	return &ChromedpLauncher{opts: opts}
}

func (l *ChromedpLauncher) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", l.opts.Headless),
		chromedp.NoSandbox,
		chromedp.Flag(flagDisableSetuidSandbox, true),
		chromedp.Flag(flagDisableBlinkFeatures, automationControlled),
	)
	if l.opts.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(l.opts.UserAgent))
	}
	if l.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(l.opts.ExecPath))
	}
	return opts
}

// Launch starts a browser bound to ctx: cancelling ctx kills the process.
func (l *ChromedpLauncher) Launch(ctx context.Context) (Session, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, l.allocatorOptions()...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	// the first Run starts the browser and opens the tab
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, newError(OpLaunch, err)
	}

	return &chromedpSession{
		tabCtx:            tabCtx,
		allocCancel:       allocCancel,
		tabCancel:         tabCancel,
		navigationTimeout: l.opts.NavigationTimeout,
	}, nil
}

type chromedpSession struct {
	tabCtx            context.Context
	tabCancel         context.CancelFunc
	allocCancel       context.CancelFunc
	navigationTimeout time.Duration

	closeOnce sync.Once
	closeErr  error
}

// run executes actions on the tab, aborting them when ctx is done.
func (s *chromedpSession) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	return runBound(ctx, s.tabCtx, timeout, func(runCtx context.Context) error {
		return chromedp.Run(runCtx, actions...)
	})
}

// runBound calls fn with a context derived from base that also ends when
// ctx does. An abort caused by ctx is reported with ctx's own error, so a
// request deadline stays a deadline.
func runBound(ctx, base context.Context, timeout time.Duration, fn func(context.Context) error) error {
	runCtx, cancel := context.WithCancelCause(base)
	defer cancel(nil)
	if timeout > 0 {
		var cancelTimeout context.CancelFunc
		runCtx, cancelTimeout = context.WithTimeout(runCtx, timeout)
		defer cancelTimeout()
	}

	stop := context.AfterFunc(ctx, func() { cancel(context.Cause(ctx)) })
	defer stop()

	err := fn(runCtx)
	if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
		return context.Cause(ctx)
	}
	return err
}

func (s *chromedpSession) Navigate(ctx context.Context, url string) error {
	if err := s.run(ctx, s.navigationTimeout,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return newError(OpNavigate, err)
	}
	return nil
}

func (s *chromedpSession) HTML(ctx context.Context) (string, error) {
	var html string
	if err := s.run(ctx, 0, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", newError(OpHTML, err)
	}
	return html, nil
}

func (s *chromedpSession) Evaluate(ctx context.Context, script string, out any) error {
	awaitPromise := func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
		return p.WithAwaitPromise(true)
	}
	if err := s.run(ctx, 0, chromedp.Evaluate(script, out, awaitPromise)); err != nil {
		return newError(OpEvaluate, err)
	}
	return nil
}

func (s *chromedpSession) WaitFor(ctx context.Context, predicate string, timeout time.Duration) error {
	var ready bool
	err := s.run(ctx, 0, chromedp.Poll(predicate, &ready, chromedp.WithPollingTimeout(timeout)))
	if err == nil {
		return nil
	}
	if errors.Is(err, chromedp.ErrPollingTimeout) {
		return newError(OpWait, ErrWaitTimeout)
	}
	return newError(OpWait, err)
}

func (s *chromedpSession) Close() error {
	s.closeOnce.Do(func() {
		err := chromedp.Cancel(s.tabCtx)
		s.tabCancel()
		s.allocCancel()
		if err != nil && !errors.Is(err, context.Canceled) {
			s.closeErr = newError(OpClose, err)
		}
	})
	return s.closeErr
}
