package challenge

import (
	"fmt"

	"github.com/MKhiriev/trademark-relay/internal/config"
)

// NewAcquirer returns the strategy selected by cfg. pageURL is the research
// page the token is issued for.
func NewAcquirer(cfg config.Challenge, pageURL string) (Acquirer, error) {
	switch cfg.Strategy {
	case config.StrategySelf, "":
		return NewSelfExtractor(cfg.Action, cfg.WaitTimeout), nil
	case config.StrategyDelegated:
		return NewDelegatedSolver(DelegatedOptions{
			ProviderKey:     cfg.ProviderKey,
			PageURL:         pageURL,
			Action:          cfg.Action,
			MinScore:        cfg.MinScore,
			HandleInvisible: cfg.HandlesInvisible(),
			SolveTimeout:    cfg.SolveTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}
