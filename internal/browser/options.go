package browser

import (
	"fmt"
	"time"

	"github.com/MKhiriev/trademark-relay/internal/config"
)

// Launch flags shared by both drivers. They keep Chrome usable inside
// containers and hide the automation marker from page scripts.
const (
	flagDisableSetuidSandbox = "disable-setuid-sandbox"
	flagDisableBlinkFeatures = "disable-blink-features"
	automationControlled     = "AutomationControlled"
)

// Options configures launched sessions.
type Options struct {
	ExecPath          string
	Headless          bool
	UserAgent         string
	NavigationTimeout time.Duration
	Stealth           bool
}

// OptionsFromConfig maps browser configuration to launch options.
func OptionsFromConfig(cfg config.Browser) Options {
	return Options{
		ExecPath:          cfg.ExecPath,
		Headless:          cfg.IsHeadless(),
		UserAgent:         cfg.UserAgent,
		NavigationTimeout: cfg.NavigationTimeout,
		Stealth:           cfg.IsStealth(),
	}
}

// NewLauncher returns the launcher for cfg.Driver, bounded by
// cfg.MaxConcurrent when it is positive.
func NewLauncher(cfg config.Browser) (Launcher, error) {
	opts := OptionsFromConfig(cfg)

	var l Launcher
	switch cfg.Driver {
	case config.DriverChromedp, "":
		l = NewChromedpLauncher(opts)
	case config.DriverRod:
		l = NewRodLauncher(opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	if cfg.MaxConcurrent > 0 {
		l = NewBoundedLauncher(l, int64(cfg.MaxConcurrent))
	}
	return l, nil
}
