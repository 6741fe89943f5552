package service

import (
	"context"
	"time"

	"github.com/MKhiriev/trademark-relay/internal/adapter"
	"github.com/MKhiriev/trademark-relay/internal/browser"
	"github.com/MKhiriev/trademark-relay/internal/challenge"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/validators"
	"github.com/MKhiriev/trademark-relay/models"
	"github.com/rs/zerolog"
)

// ResearchDeps are the collaborators of a relay cycle.
type ResearchDeps struct {
	Launcher  browser.Launcher
	Acquirer  challenge.Acquirer
	Adapter   adapter.ResearchAdapter
	Validator validators.Validator
}

// ResearchOptions tune a relay cycle.
type ResearchOptions struct {
	// PageURL is the page the browser opens before acquiring a token.
	PageURL string
	// RequestTimeout bounds the whole cycle after validation. Zero means
	// the cycle is only bounded by the per-stage timeouts.
	RequestTimeout time.Duration
}

type researchService struct {
	launcher  browser.Launcher
	acquirer  challenge.Acquirer
	adapter   adapter.ResearchAdapter
	validator validators.Validator

	pageURL        string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewResearchService returns the ResearchService that drives a browser for
// every request. A nil Validator defaults to [validators.NewResearchValidator].
func NewResearchService(deps ResearchDeps, opts ResearchOptions, logger *logger.Logger) (ResearchService, error) {
	switch {
	case deps.Launcher == nil:
		return nil, ErrNoLauncher
	case deps.Acquirer == nil:
		return nil, ErrNoAcquirer
	case deps.Adapter == nil:
		return nil, ErrNoAdapter
	}
	if deps.Validator == nil {
		deps.Validator = validators.NewResearchValidator()
	}

	return &researchService{
		launcher:       deps.Launcher,
		acquirer:       deps.Acquirer,
		adapter:        deps.Adapter,
		validator:      deps.Validator,
		pageURL:        opts.PageURL,
		requestTimeout: opts.RequestTimeout,
		logger:         logger,
	}, nil
}

func (s *researchService) Search(ctx context.Context, req models.SearchRequest) ([]byte, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}

	return s.relay(ctx, func(token string) (models.ResearchPayload, error) {
		return AssembleSearchPayload(req, token), nil
	})
}

func (s *researchService) FileDetails(ctx context.Context, req models.FileDetailRequest) ([]byte, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}

	return s.relay(ctx, func(token string) (models.ResearchPayload, error) {
		return AssembleFileDetailPayload(req, token)
	})
}

// relay runs the browser part of a cycle. The session is closed exactly once
// on every path out of here, including panics in later stages.
func (s *researchService) relay(ctx context.Context, assemble func(token string) (models.ResearchPayload, error)) ([]byte, error) {
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}
	ctx = s.withServiceLogger(ctx)
	log := logger.FromContext(ctx)

	log.Debug().Str("stage", string(StageAcquiringBrowser)).Send()
	session, err := s.launcher.Launch(ctx)
	if err != nil {
		return nil, &StageError{Stage: StageAcquiringBrowser, Err: err}
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing browser session")
		}
	}()

	log.Debug().Str("stage", string(StageNavigating)).Str("url", s.pageURL).Send()
	if err = session.Navigate(ctx, s.pageURL); err != nil {
		return nil, &StageError{Stage: StageNavigating, Err: err}
	}

	log.Debug().Str("stage", string(StageSolvingChallenge)).Send()
	token, err := s.acquirer.Acquire(ctx, session)
	if err != nil {
		return nil, &StageError{Stage: StageSolvingChallenge, Err: err}
	}

	log.Debug().Str("stage", string(StageAssembling)).Send()
	payload, err := assemble(token)
	if err != nil {
		return nil, &StageError{Stage: StageAssembling, Err: err}
	}

	log.Debug().Str("stage", string(StageRelaying)).Str("type", payload.ResearchType()).Send()
	body, err := s.adapter.Research(ctx, payload)
	if err != nil {
		return nil, &StageError{Stage: StageRelaying, Err: err}
	}

	log.Debug().Str("stage", string(StageResponding)).Int("size", len(body)).Send()
	return body, nil
}

// withServiceLogger attaches the service logger to ctx unless ctx already
// carries a request logger, so stage logs of calls made outside the HTTP
// layer are not dropped.
func (s *researchService) withServiceLogger(ctx context.Context) context.Context {
	if s.logger == nil || zerolog.Ctx(ctx).GetLevel() != zerolog.Disabled {
		return ctx
	}
	return s.logger.WithContext(ctx)
}
