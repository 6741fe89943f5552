package config

import (
	"os"
	"time"
)

// Default values applied to unset fields after all sources are merged.
const (
	DefaultPort              = 3000
	DefaultLogLevel          = "debug"
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultAuthIssuer        = "trademark-relay"
	DefaultUserAgent         = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"
	DefaultExecPath          = "/usr/bin/google-chrome-stable"
	DefaultNavigationTimeout = 60 * time.Second
	DefaultChallengeAction   = "search"
	DefaultWaitTimeout       = 15 * time.Second
	DefaultMinScore          = 0.3
	DefaultSolveTimeout      = 180 * time.Second
	DefaultPageURL           = "https://www.turkpatent.gov.tr/arastirma-yap"
	DefaultAPIURL            = "https://www.turkpatent.gov.tr/api/research"
	DefaultOrigin            = "https://www.turkpatent.gov.tr"
	DefaultUpstreamTimeout   = 60 * time.Second
	DefaultClientServerURL   = "http://localhost:3000"
	DefaultClientTimeout     = 3 * time.Minute
)

// statFn is replaced in tests.
var statFn = os.Stat

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	setString(&cfg.LogLevel, DefaultLogLevel)

	setDuration(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	setString(&cfg.Server.AuthIssuer, DefaultAuthIssuer)

	setString(&cfg.Browser.Driver, DriverChromedp)
	setString(&cfg.Browser.UserAgent, DefaultUserAgent)
	setDuration(&cfg.Browser.NavigationTimeout, DefaultNavigationTimeout)
	if cfg.Browser.ExecPath == "" {
		if _, err := statFn(DefaultExecPath); err == nil {
			cfg.Browser.ExecPath = DefaultExecPath
		}
	}

	setString(&cfg.Challenge.Strategy, StrategySelf)
	setString(&cfg.Challenge.Action, DefaultChallengeAction)
	setDuration(&cfg.Challenge.WaitTimeout, DefaultWaitTimeout)
	setDuration(&cfg.Challenge.SolveTimeout, DefaultSolveTimeout)
	if cfg.Challenge.MinScore == 0 {
		cfg.Challenge.MinScore = DefaultMinScore
	}

	setString(&cfg.Upstream.PageURL, DefaultPageURL)
	setString(&cfg.Upstream.APIURL, DefaultAPIURL)
	setString(&cfg.Upstream.Origin, DefaultOrigin)
	setString(&cfg.Upstream.Referer, cfg.Upstream.PageURL)
	setDuration(&cfg.Upstream.Timeout, DefaultUpstreamTimeout)

	setString(&cfg.Client.ServerURL, DefaultClientServerURL)
	setDuration(&cfg.Client.RequestTimeout, DefaultClientTimeout)
	setString(&cfg.Client.AuthIssuer, DefaultAuthIssuer)
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setDuration(dst *time.Duration, def time.Duration) {
	if *dst == 0 {
		*dst = def
	}
}
