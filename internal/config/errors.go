package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid. Concrete errors wrap one of these with details.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBrowserConfigs indicates an unknown driver or negative limits.
	ErrInvalidBrowserConfigs = errors.New("invalid browser configuration")
	// ErrInvalidChallengeConfigs indicates an unknown strategy or a missing
	// provider credential.
	ErrInvalidChallengeConfigs = errors.New("invalid challenge configuration")
	// ErrInvalidUpstreamConfigs indicates malformed upstream URLs or limits.
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrInvalidClientConfigs indicates invalid terminal client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
