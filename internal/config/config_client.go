package config

import (
	"fmt"
	"time"
)

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// ServerURL is the relay base URL.
	ServerURL string
	// RequestTimeout is the timeout of one relay call.
	RequestTimeout time.Duration
	// AuthSignKey signs bearer tokens when non-empty.
	AuthSignKey string
	// AuthIssuer is the "iss" claim of issued tokens.
	AuthIssuer string
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
}

// GetClientConfig loads the structured config via [GetStructuredConfig],
// maps the fields relevant to the client runtime and validates them.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		AuthSignKey:    cfg.Client.AuthSignKey,
		AuthIssuer:     cfg.Client.AuthIssuer,
		LogLevel:       cfg.LogLevel,
	}
}
