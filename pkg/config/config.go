// Package config resolves client options from the application's
// environment: a YAML file, environment variables, or both. The core
// client never reads the environment itself; this package is the
// collaborator that turns external settings into an a7.Options value.
//
// Environment variables take precedence over the file. Recognized
// variables:
//
//	A7_API_TOKEN    API token (required unless set in the file)
//	A7_BASE_URL     API root override
//	A7_TIMEOUT      per-request timeout, Go duration syntax ("45s")
//	A7_VERIFY_SSL   "false" disables TLS verification
//	NO_PROXY        comma-separated proxy bypass hosts
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/veiloq/a7-client/pkg/a7"
	"github.com/veiloq/a7-client/pkg/ratelimit"
)

// Duration is a time.Duration that unmarshals from Go duration syntax
// ("45s", "1m30s"); yaml.v3 has no native duration support.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// File mirrors the YAML configuration layout:
//
//	token: "..."
//	base_url: "https://a7.deutsche-boerse.de/api"
//	timeout: 45s
//	verify_ssl: false
//	no_proxy: ["a7.deutsche-boerse.de"]
//	rate_limit:
//	  limit: 10
//	  interval: 1s
//	navigation_mode: reference
type File struct {
	Token          string     `yaml:"token"`
	BaseURL        string     `yaml:"base_url"`
	Timeout        Duration   `yaml:"timeout"`
	VerifySSL      *bool      `yaml:"verify_ssl"`
	NoProxy        []string   `yaml:"no_proxy"`
	RateLimit      *RateLimit `yaml:"rate_limit"`
	NavigationMode string     `yaml:"navigation_mode"`
}

// RateLimit is the YAML form of a request pacing budget.
type RateLimit struct {
	Limit    int      `yaml:"limit"`
	Interval Duration `yaml:"interval"`
}

// LoadFile parses a YAML configuration file into client options.
// Environment variables are applied on top.
func LoadFile(path string) (*a7.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("cannot parse YAML: %w", err)
	}

	opts := a7.NewOptions()
	opts.Token = file.Token
	if file.BaseURL != "" {
		opts.BaseURL = file.BaseURL
	}
	if file.Timeout > 0 {
		opts.Timeout = time.Duration(file.Timeout)
	}
	if file.VerifySSL != nil {
		opts.InsecureSkipVerify = !*file.VerifySSL
	}
	opts.NoProxy = file.NoProxy
	if file.RateLimit != nil {
		opts.RateLimit = ratelimit.Rate{
			Limit:    file.RateLimit.Limit,
			Interval: time.Duration(file.RateLimit.Interval),
		}
	}
	if file.NavigationMode != "" {
		opts.NavigationMode = file.NavigationMode
	}

	return applyEnv(opts)
}

// FromEnv builds client options from environment variables alone. A .env
// file in the working directory is loaded first when present, matching
// how the platform's own examples ship credentials.
func FromEnv() (*a7.Options, error) {
	_ = godotenv.Load()
	return applyEnv(a7.NewOptions())
}

func applyEnv(opts *a7.Options) (*a7.Options, error) {
	if token := os.Getenv("A7_API_TOKEN"); token != "" {
		opts.Token = token
	}
	if baseURL := os.Getenv("A7_BASE_URL"); baseURL != "" {
		opts.BaseURL = baseURL
	}
	if raw := os.Getenv("A7_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid A7_TIMEOUT %q: %w", raw, err)
		}
		opts.Timeout = timeout
	}
	if raw := os.Getenv("A7_VERIFY_SSL"); raw != "" {
		opts.InsecureSkipVerify = strings.EqualFold(raw, "false")
	}
	if raw := noProxyEnv(); raw != "" {
		for _, host := range strings.Split(raw, ",") {
			if host = strings.TrimSpace(host); host != "" {
				opts.NoProxy = append(opts.NoProxy, host)
			}
		}
	}
	return opts, nil
}

func noProxyEnv() string {
	if v := os.Getenv("NO_PROXY"); v != "" {
		return v
	}
	return os.Getenv("no_proxy")
}
