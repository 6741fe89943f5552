// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged and defaulted [StructuredConfig] can be
// used to start the relay.
func (cfg *StructuredConfig) validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Port)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	switch cfg.Browser.Driver {
	case DriverChromedp, DriverRod:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidBrowserConfigs, cfg.Browser.Driver)
	}
	if cfg.Browser.MaxConcurrent < 0 || cfg.Browser.NavigationTimeout < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidBrowserConfigs)
	}

	switch cfg.Challenge.Strategy {
	case StrategySelf:
	case StrategyDelegated:
		if cfg.Challenge.ProviderKey == "" {
			return fmt.Errorf("%w: delegated strategy requires a provider key", ErrInvalidChallengeConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidChallengeConfigs, cfg.Challenge.Strategy)
	}
	if cfg.Challenge.WaitTimeout < 0 || cfg.Challenge.SolveTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidChallengeConfigs)
	}
	if cfg.Challenge.MinScore < 0 || cfg.Challenge.MinScore > 1 {
		return fmt.Errorf("%w: min score must be within [0, 1]", ErrInvalidChallengeConfigs)
	}

	for _, raw := range []string{cfg.Upstream.PageURL, cfg.Upstream.APIURL} {
		if !isAbsoluteURL(raw) {
			return fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidUpstreamConfigs, raw)
		}
	}
	if cfg.Upstream.RateLimit < 0 || cfg.Upstream.Timeout < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidUpstreamConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !isAbsoluteURL(cfg.ServerURL) {
		return fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidClientConfigs, cfg.ServerURL)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
