package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// RodLauncher starts Chrome with go-rod. Pages get the go-rod/stealth
// evasions when Options.Stealth is set.
type RodLauncher struct {
	opts Options
}

// NewRodLauncher returns a rod-backed launcher.
func NewRodLauncher(opts Options) *RodLauncher {
	return &RodLauncher{opts: opts}
}

func (l *RodLauncher) newProcess(ctx context.Context) *launcher.Launcher {
	proc := launcher.New().
		Context(ctx).
		Headless(l.opts.Headless).
		NoSandbox(true).
		Set(flagDisableSetuidSandbox).
		Set(flagDisableBlinkFeatures, automationControlled)
	if l.opts.ExecPath != "" {
		proc = proc.Bin(l.opts.ExecPath)
	}
	return proc
}

func (l *RodLauncher) Launch(ctx context.Context) (Session, error) {
	proc := l.newProcess(ctx)

	controlURL, err := proc.Launch()
	if err != nil {
		proc.Kill()
		proc.Cleanup()
		return nil, newError(OpLaunch, err)
	}

	s := &rodSession{proc: proc, navigationTimeout: l.opts.NavigationTimeout}

	s.browser = rod.New().ControlURL(controlURL).Context(ctx)
	if err := s.browser.Connect(); err != nil {
		_ = s.Close()
		return nil, newError(OpLaunch, err)
	}

	if l.opts.Stealth {
		s.page, err = stealth.Page(s.browser)
	} else {
		s.page, err = s.browser.Page(proto.TargetCreateTarget{})
	}
	if err != nil {
		_ = s.Close()
		return nil, newError(OpLaunch, err)
	}

	if l.opts.UserAgent != "" {
		if err := s.page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: l.opts.UserAgent}); err != nil {
			_ = s.Close()
			return nil, newError(OpLaunch, err)
		}
	}

	return s, nil
}

type rodSession struct {
	proc              *launcher.Launcher
	browser           *rod.Browser
	page              *rod.Page
	navigationTimeout time.Duration

	closeOnce sync.Once
	closeErr  error
}

func (s *rodSession) Navigate(ctx context.Context, url string) error {
	if s.navigationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.navigationTimeout)
		defer cancel()
	}

	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return newError(OpNavigate, err)
	}
	if err := page.WaitLoad(); err != nil {
		return newError(OpNavigate, err)
	}
	return nil
}

func (s *rodSession) HTML(ctx context.Context) (string, error) {
	html, err := s.page.Context(ctx).HTML()
	if err != nil {
		return "", newError(OpHTML, err)
	}
	return html, nil
}

// rodPollInterval is how often WaitFor re-evaluates its predicate.
const rodPollInterval = 100 * time.Millisecond

// rodExpression builds a raw Runtime.evaluate call for script. rod.Eval
// expects a function and would fail on a plain expression, so page scripts
// go straight to CDP.
func rodExpression(script string) proto.RuntimeEvaluate {
	return proto.RuntimeEvaluate{
		Expression:    script,
		AwaitPromise:  true,
		ReturnByValue: true,
	}
}

// decodeRemoteValue copies a by-value evaluation result into out. An
// exception thrown by the script is reported as [ErrScriptException].
func decodeRemoteValue(res *proto.RuntimeEvaluateResult, out any) error {
	if res.ExceptionDetails != nil {
		return fmt.Errorf("%w: %s", ErrScriptException, res.ExceptionDetails.Text)
	}
	if out == nil || res.Result == nil {
		return nil
	}
	return json.Unmarshal([]byte(res.Result.Value.JSON("", "")), out)
}

func (s *rodSession) evaluate(ctx context.Context, script string, out any) error {
	res, err := rodExpression(script).Call(s.page.Context(ctx))
	if err != nil {
		return err
	}
	return decodeRemoteValue(res, out)
}

func (s *rodSession) Evaluate(ctx context.Context, script string, out any) error {
	if err := s.evaluate(ctx, script, out); err != nil {
		return newError(OpEvaluate, err)
	}
	return nil
}

func (s *rodSession) WaitFor(ctx context.Context, predicate string, timeout time.Duration) error {
	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ticker := time.NewTicker(rodPollInterval)
	defer ticker.Stop()

	for {
		var ready bool
		err := s.evaluate(waitCtx, predicate, &ready)
		if err == nil && ready {
			return nil
		}
		if err != nil && waitCtx.Err() == nil {
			return newError(OpWait, err)
		}

		select {
		case <-waitCtx.Done():
			// only the local timeout counts as a wait timeout; the caller's
			// own deadline is reported as is
			if ctx.Err() == nil {
				return newError(OpWait, ErrWaitTimeout)
			}
			return newError(OpWait, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (s *rodSession) Close() error {
	s.closeOnce.Do(func() {
		if s.browser != nil {
			if err := s.browser.Close(); err != nil && !errors.Is(err, context.Canceled) {
				s.closeErr = newError(OpClose, err)
			}
		}
		s.proc.Kill()
		s.proc.Cleanup()
	})
	return s.closeErr
}
