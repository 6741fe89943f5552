package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	api2captcha "github.com/2captcha/2captcha-go"

	"github.com/MKhiriev/trademark-relay/internal/browser"
	"github.com/MKhiriev/trademark-relay/internal/logger"
)

const strategyDelegated = "delegated"

// reCAPTCHA versions understood by the solving provider.
const (
	versionCheckbox = "v2"
	versionScore    = "v3"
)

// readResponseScript reads the token back through the challenge library,
// falling back to the response field for score-based keys that have no
// widget to query.
const readResponseScript = `(() => {
  try {
    if (window.grecaptcha && typeof grecaptcha.getResponse === "function") {
      const r = grecaptcha.getResponse();
      if (r) return r;
    }
  } catch (e) {}
  const el = document.querySelector('textarea[name="g-recaptcha-response"], #g-recaptcha-response');
  return el ? el.value : "";
})()`

// captchaSolver is the part of *api2captcha.Client used here.
type captchaSolver interface {
	Solve(req api2captcha.Request) (string, string, error)
}

// DelegatedSolver sends the page's challenge to the 2captcha service.
type DelegatedSolver struct {
	solver          captchaSolver
	pageURL         string
	action          string
	minScore        float64
	handleInvisible bool
	solveTimeout    time.Duration
}

// DelegatedOptions configures a DelegatedSolver.
type DelegatedOptions struct {
	ProviderKey     string
	PageURL         string
	Action          string
	MinScore        float64
	HandleInvisible bool
	SolveTimeout    time.Duration
}

// NewDelegatedSolver returns a solver backed by a 2captcha client.
func NewDelegatedSolver(opts DelegatedOptions) *DelegatedSolver {
	client := api2captcha.NewClient(opts.ProviderKey)
	if opts.SolveTimeout > 0 {
		client.RecaptchaTimeout = int(opts.SolveTimeout.Seconds())
	}
	return newDelegatedSolver(client, opts)
}

func newDelegatedSolver(solver captchaSolver, opts DelegatedOptions) *DelegatedSolver {
	return &DelegatedSolver{
		solver:          solver,
		pageURL:         opts.PageURL,
		action:          opts.Action,
		minScore:        opts.MinScore,
		handleInvisible: opts.HandleInvisible,
		solveTimeout:    opts.SolveTimeout,
	}
}

func (d *DelegatedSolver) Acquire(ctx context.Context, page browser.Page) (string, error) {
	log := logger.FromContext(ctx)

	html, err := page.HTML(ctx)
	if err != nil {
		return "", err
	}

	captcha, err := d.locate(html)
	if err != nil {
		return "", &TokenAcquisitionError{Strategy: strategyDelegated, Err: err}
	}
	log.Debug().
		Str("site_key", captcha.SiteKey).
		Str("version", captcha.Version).
		Bool("invisible", captcha.Invisible).
		Msg("submitting challenge to solving provider")

	solution, err := d.solve(ctx, captcha)
	if err != nil {
		return "", err
	}

	if err := inject(ctx, page, solution); err != nil {
		return "", err
	}

	var token string
	if err := page.Evaluate(ctx, readResponseScript, &token); err != nil {
		return "", err
	}
	if strings.TrimSpace(token) == "" {
		return "", &TokenAcquisitionError{Strategy: strategyDelegated, Err: ErrEmptyToken}
	}

	return token, nil
}

// locate picks the challenge to solve. A visible widget wins; invisible
// widgets and score-based render keys are only eligible when invisible
// handling is enabled.
func (d *DelegatedSolver) locate(html string) (api2captcha.ReCaptcha, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return api2captcha.ReCaptcha{}, err
	}

	widgets := findWidgets(doc)
	for _, w := range widgets {
		if !w.Invisible {
			return api2captcha.ReCaptcha{SiteKey: w.SiteKey, Url: d.pageURL, Version: versionCheckbox}, nil
		}
	}

	if !d.handleInvisible {
		return api2captcha.ReCaptcha{}, ErrNoChallenge
	}

	// every remaining widget is invisible
	if len(widgets) > 0 {
		return api2captcha.ReCaptcha{SiteKey: widgets[0].SiteKey, Url: d.pageURL, Version: versionCheckbox, Invisible: true}, nil
	}

	if key, ok := findRenderKey(doc); ok {
		return api2captcha.ReCaptcha{
			SiteKey: key,
			Url:     d.pageURL,
			Version: versionScore,
			Action:  d.action,
			Score:   d.minScore,
		}, nil
	}

	return api2captcha.ReCaptcha{}, ErrNoChallenge
}

type solveResult struct {
	code string
	err  error
}

// solve runs the blocking provider call, giving up when ctx is done or the
// solve timeout passes. The provider call itself cannot be interrupted.
func (d *DelegatedSolver) solve(ctx context.Context, captcha api2captcha.ReCaptcha) (string, error) {
	if d.solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.solveTimeout)
		defer cancel()
	}

	done := make(chan solveResult, 1)
	go func() {
		code, _, err := d.solver.Solve(captcha.ToRequest())
		done <- solveResult{code: code, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", &TimeoutError{What: "solving provider", After: d.solveTimeout, Err: ctx.Err()}
	case res := <-done:
		if res.err != nil {
			return "", &TokenAcquisitionError{Strategy: strategyDelegated, Err: errors.Join(ErrProvider, res.err)}
		}
		if strings.TrimSpace(res.code) == "" {
			return "", &TokenAcquisitionError{Strategy: strategyDelegated, Err: ErrEmptyToken}
		}
		return res.code, nil
	}
}

// inject writes solution into every response field, creating a hidden one
// when the page has none.
func inject(ctx context.Context, page browser.Page, solution string) error {
	encoded, err := json.Marshal(solution)
	if err != nil {
		return &TokenAcquisitionError{Strategy: strategyDelegated, Err: err}
	}

	script := fmt.Sprintf(`((token) => {
  let fields = document.querySelectorAll('textarea[name="g-recaptcha-response"], #g-recaptcha-response');
  if (fields.length === 0) {
    const el = document.createElement("textarea");
    el.id = "g-recaptcha-response";
    el.name = "g-recaptcha-response";
    el.style.display = "none";
    document.body.appendChild(el);
    fields = [el];
  }
  fields.forEach((el) => { el.value = token; el.innerHTML = token; });
  return true;
})(%s)`, encoded)

	return page.Evaluate(ctx, script, nil)
}
