package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are written as strings such as "15s" or "1m".
type StructuredJSONConfig struct {
	Port     int    `json:"port"`
	LogLevel string `json:"log_level"`

	Server struct {
		Address         string   `json:"address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		MetricsEnabled  *bool    `json:"metrics_enabled"`
		AuthSignKey     string   `json:"auth_sign_key"`
		AuthIssuer      string   `json:"auth_issuer"`
	} `json:"server"`

	Browser struct {
		Driver            string   `json:"driver"`
		ExecPath          string   `json:"exec_path"`
		Headless          *bool    `json:"headless"`
		UserAgent         string   `json:"user_agent"`
		NavigationTimeout Duration `json:"navigation_timeout"`
		MaxConcurrent     int      `json:"max_concurrent"`
		Stealth           *bool    `json:"stealth"`
	} `json:"browser"`

	Challenge struct {
		Strategy     string   `json:"strategy"`
		Action       string   `json:"action"`
		WaitTimeout  Duration `json:"wait_timeout"`
		ProviderKey  string   `json:"provider_key"`
		Invisible    *bool    `json:"invisible"`
		MinScore     float64  `json:"min_score"`
		SolveTimeout Duration `json:"solve_timeout"`
	} `json:"challenge"`

	Upstream struct {
		PageURL   string   `json:"page_url"`
		APIURL    string   `json:"api_url"`
		Origin    string   `json:"origin"`
		Referer   string   `json:"referer"`
		Timeout   Duration `json:"timeout"`
		RateLimit float64  `json:"rate_limit"`
	} `json:"upstream"`

	Client struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthSignKey    string   `json:"auth_sign_key"`
		AuthIssuer     string   `json:"auth_issuer"`
	} `json:"client"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Port:     j.Port,
		LogLevel: j.LogLevel,
		Server: Server{
			Address:         j.Server.Address,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
			MetricsEnabled:  j.Server.MetricsEnabled,
			AuthSignKey:     j.Server.AuthSignKey,
			AuthIssuer:      j.Server.AuthIssuer,
		},
		Browser: Browser{
			Driver:            j.Browser.Driver,
			ExecPath:          j.Browser.ExecPath,
			Headless:          j.Browser.Headless,
			UserAgent:         j.Browser.UserAgent,
			NavigationTimeout: time.Duration(j.Browser.NavigationTimeout),
			MaxConcurrent:     j.Browser.MaxConcurrent,
			Stealth:           j.Browser.Stealth,
		},
		Challenge: Challenge{
			Strategy:     j.Challenge.Strategy,
			Action:       j.Challenge.Action,
			WaitTimeout:  time.Duration(j.Challenge.WaitTimeout),
			ProviderKey:  j.Challenge.ProviderKey,
			Invisible:    j.Challenge.Invisible,
			MinScore:     j.Challenge.MinScore,
			SolveTimeout: time.Duration(j.Challenge.SolveTimeout),
		},
		Upstream: Upstream{
			PageURL:   j.Upstream.PageURL,
			APIURL:    j.Upstream.APIURL,
			Origin:    j.Upstream.Origin,
			Referer:   j.Upstream.Referer,
			Timeout:   time.Duration(j.Upstream.Timeout),
			RateLimit: j.Upstream.RateLimit,
		},
		Client: Client{
			ServerURL:      j.Client.ServerURL,
			RequestTimeout: time.Duration(j.Client.RequestTimeout),
			AuthSignKey:    j.Client.AuthSignKey,
			AuthIssuer:     j.Client.AuthIssuer,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
