// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Browser drivers.
const (
	DriverChromedp = "chromedp"
	DriverRod      = "rod"
)

// Challenge strategies.
const (
	StrategySelf      = "self"
	StrategyDelegated = "delegated"
)

// StructuredConfig is the top-level configuration container for the relay.
// It is populated by merging values from environment variables, command-line
// flags and an optional JSON file, then completed with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Port is the listening port used when Server.Address is empty.
	// Env: PORT
	Port int `env:"PORT"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Server holds inbound HTTP settings.
	Server Server `envPrefix:"SERVER_"`

	// Browser holds headless browser launch settings.
	Browser Browser `envPrefix:"BROWSER_"`

	// Challenge holds anti-bot token acquisition settings.
	Challenge Challenge `envPrefix:"CHALLENGE_"`

	// Upstream holds settings of the research API being relayed to.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// Client holds settings of the terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Address is the TCP address the HTTP server listens on, in
	// "host:port" form. Defaults to ":<Port>".
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds the whole relay cycle of one request.
	// Zero means no bound beyond the per-stage timeouts.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MetricsEnabled exposes GET /metrics.
	// Env: SERVER_METRICS_ENABLED
	MetricsEnabled *bool `env:"METRICS_ENABLED"`

	// AuthSignKey enables bearer-token auth on relay routes when non-empty.
	// Env: SERVER_AUTH_SIGN_KEY
	AuthSignKey string `env:"AUTH_SIGN_KEY"`

	// AuthIssuer is the expected "iss" claim of bearer tokens.
	// Env: SERVER_AUTH_ISSUER
	AuthIssuer string `env:"AUTH_ISSUER"`
}

// Browser holds headless browser settings.
type Browser struct {
	// Driver selects the automation library: "chromedp" or "rod".
	// Env: BROWSER_DRIVER
	Driver string `env:"DRIVER"`

	// ExecPath is the Chrome binary. Empty lets the driver look it up.
	// Env: BROWSER_EXEC_PATH
	ExecPath string `env:"EXEC_PATH"`

	// Headless runs Chrome without a window.
	// Env: BROWSER_HEADLESS
	Headless *bool `env:"HEADLESS"`

	// UserAgent is presented by the page and by the upstream relay.
	// Env: BROWSER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// NavigationTimeout bounds loading of the research page.
	// Env: BROWSER_NAVIGATION_TIMEOUT
	NavigationTimeout time.Duration `env:"NAVIGATION_TIMEOUT"`

	// MaxConcurrent caps simultaneously running browsers. Zero is unlimited.
	// Env: BROWSER_MAX_CONCURRENT
	MaxConcurrent int `env:"MAX_CONCURRENT"`

	// Stealth applies go-rod/stealth evasions to rod pages.
	// Env: BROWSER_STEALTH
	Stealth *bool `env:"STEALTH"`
}

// Challenge holds token acquisition settings.
type Challenge struct {
	// Strategy is "self" (in-page execution) or "delegated" (2captcha).
	// Env: CHALLENGE_STRATEGY
	Strategy string `env:"STRATEGY"`

	// Action is the reCAPTCHA action name.
	// Env: CHALLENGE_ACTION
	Action string `env:"ACTION"`

	// WaitTimeout bounds waiting for the challenge library on the page.
	// Env: CHALLENGE_WAIT_TIMEOUT
	WaitTimeout time.Duration `env:"WAIT_TIMEOUT"`

	// ProviderKey is the solving provider credential.
	// Env: CHALLENGE_PROVIDER_KEY
	ProviderKey string `env:"PROVIDER_KEY"`

	// Invisible lets the delegated strategy solve invisible and score-based
	// challenges, not only visible checkbox widgets.
	// Env: CHALLENGE_INVISIBLE
	Invisible *bool `env:"INVISIBLE"`

	// MinScore is the requested score for score-based challenges.
	// Env: CHALLENGE_MIN_SCORE
	MinScore float64 `env:"MIN_SCORE"`

	// SolveTimeout bounds a delegated solve.
	// Env: CHALLENGE_SOLVE_TIMEOUT
	SolveTimeout time.Duration `env:"SOLVE_TIMEOUT"`
}

// Upstream holds settings of the research API.
type Upstream struct {
	// PageURL is the page navigated to before acquiring a token.
	// Env: UPSTREAM_PAGE_URL
	PageURL string `env:"PAGE_URL"`

	// APIURL is the research endpoint the payload is posted to.
	// Env: UPSTREAM_API_URL
	APIURL string `env:"API_URL"`

	// Origin header value.
	// Env: UPSTREAM_ORIGIN
	Origin string `env:"ORIGIN"`

	// Referer header value.
	// Env: UPSTREAM_REFERER
	Referer string `env:"REFERER"`

	// Timeout bounds one upstream call.
	// Env: UPSTREAM_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RateLimit caps upstream calls per second. Zero is unlimited.
	// Env: UPSTREAM_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Client holds terminal client settings.
type Client struct {
	// ServerURL is the relay base URL.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds one relay call. A relay cycle launches a
	// browser, so this is generous by default.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthSignKey signs bearer tokens presented to the relay.
	// Env: CLIENT_AUTH_SIGN_KEY
	AuthSignKey string `env:"AUTH_SIGN_KEY"`

	// AuthIssuer is the "iss" claim of issued tokens.
	// Env: CLIENT_AUTH_ISSUER
	AuthIssuer string `env:"AUTH_ISSUER"`
}

// ListenAddress returns Server.Address, or ":<Port>" when it is empty.
func (cfg *StructuredConfig) ListenAddress() string {
	if cfg.Server.Address != "" {
		return cfg.Server.Address
	}
	return ":" + strconv.Itoa(cfg.Port)
}

// IsMetricsEnabled reports whether /metrics is exposed.
func (s Server) IsMetricsEnabled() bool { return boolOr(s.MetricsEnabled, true) }

// IsAuthEnabled reports whether relay routes require a bearer token.
func (s Server) IsAuthEnabled() bool { return s.AuthSignKey != "" }

// IsHeadless reports whether Chrome runs without a window.
func (b Browser) IsHeadless() bool { return boolOr(b.Headless, true) }

// IsStealth reports whether stealth evasions are applied.
func (b Browser) IsStealth() bool { return boolOr(b.Stealth, true) }

// HandlesInvisible reports whether invisible challenges are solved by the
// delegated strategy.
func (c Challenge) HandlesInvisible() bool { return boolOr(c.Invisible, true) }

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. A .env file in the working directory is loaded into the
// process environment first, without overriding variables that are already
// set. Sources are then consulted in priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields receive defaults before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	_ = godotenv.Load()

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	return cfg, nil
}
