package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags registers the relay flags on fs and parses args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p listening port used when -a is not set
//	-c/-config json file path with configs
//	-log-level log level (debug, info, warn, error)
//	-request-timeout relay cycle timeout (e.g., "90s")
//	-driver browser driver (chromedp, rod)
//	-exec-path Chrome binary path
//	-headless run Chrome headless
//	-max-concurrent maximum simultaneously running browsers
//	-strategy challenge strategy (self, delegated)
//	-provider-key solving provider credential
//	-rate-limit upstream calls per second
//	-server-url relay URL used by the client
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var port int
	var jsonConfigPath string
	var logLevel string
	var requestTimeout time.Duration
	var driver, execPath string
	var headless bool
	var maxConcurrent int
	var strategy, providerKey string
	var rateLimit float64
	var serverURL string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Listening port used when -a is not set")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Relay cycle timeout (e.g., 90s)")
	fs.StringVar(&driver, "driver", "", "Browser driver: chromedp or rod")
	fs.StringVar(&execPath, "exec-path", "", "Chrome binary path")
	fs.BoolVar(&headless, "headless", true, "Run Chrome headless")
	fs.IntVar(&maxConcurrent, "max-concurrent", 0, "Maximum simultaneously running browsers")
	fs.StringVar(&strategy, "strategy", "", "Challenge strategy: self or delegated")
	fs.StringVar(&providerKey, "provider-key", "", "Solving provider credential")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Upstream calls per second")
	fs.StringVar(&serverURL, "server-url", "", "Relay URL used by the client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Port:     port,
		LogLevel: logLevel,
		Server: Server{
			Address:        serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Browser: Browser{
			Driver:        driver,
			ExecPath:      execPath,
			MaxConcurrent: maxConcurrent,
		},
		Challenge: Challenge{
			Strategy:    strategy,
			ProviderKey: providerKey,
		},
		Upstream: Upstream{
			RateLimit: rateLimit,
		},
		Client: Client{
			ServerURL: serverURL,
		},
		JSONFilePath: jsonConfigPath,
	}

	// booleans only count when given explicitly
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "headless" {
			cfg.Browser.Headless = &headless
		}
	})

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on all interfaces; any other host must
// be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
