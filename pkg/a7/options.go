package a7

import (
	"time"

	"github.com/veiloq/a7-client/pkg/logging"
	"github.com/veiloq/a7-client/pkg/ratelimit"
)

const (
	// DefaultBaseURL is the production API root. Version prefixes (/v1,
	// /v2) belong to the individual endpoints, not to the base URL.
	DefaultBaseURL = "https://a7.deutsche-boerse.com/api"

	// DefaultTimeout is the per-request ceiling applied when Options
	// leaves Timeout unset.
	DefaultTimeout = 30 * time.Second

	userAgent = "a7-go-client/" + Version
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.2.0"

// Navigation modes accepted by the EOBI and MDP time-navigation endpoints.
const (
	ModeReference = "reference"
	ModeDetailed  = "detailed"
)

// Options configures a Client. The value is read once at construction and
// never mutated afterwards, so a single Options can seed several clients.
type Options struct {
	// Token is the A7 API token, with or without the "Bearer " prefix.
	// Required.
	Token string

	// BaseURL overrides the production API root, e.g. for the dev
	// environment. Trailing slashes are ignored.
	BaseURL string

	// Timeout is the per-request ceiling. Zero means DefaultTimeout.
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification. Only for
	// dev environments with self-signed certificates.
	InsecureSkipVerify bool

	// NoProxy lists hosts (exact names or ".domain" suffixes) for which
	// the environment's proxy settings are bypassed.
	NoProxy []string

	// RateLimit optionally paces outgoing requests. The zero value means
	// no client-side pacing; 429 responses still surface as ErrRateLimit.
	RateLimit ratelimit.Rate

	// NavigationMode is the mode sent by EOBI and MDP time-navigation
	// calls when the per-call mode is left empty. Defaults to
	// ModeReference. The platform changed its own default between
	// versions, so the SDK pins it explicitly here.
	NavigationMode string

	// Logger receives request/response diagnostics. Nil means silent.
	Logger logging.Logger
}

// NewOptions returns Options populated with production defaults; only the
// token remains to be filled in.
func NewOptions() *Options {
	return &Options{
		BaseURL:        DefaultBaseURL,
		Timeout:        DefaultTimeout,
		NavigationMode: ModeReference,
	}
}

// withDefaults resolves unset fields without mutating the receiver.
func (o *Options) withDefaults() Options {
	resolved := *o
	if resolved.BaseURL == "" {
		resolved.BaseURL = DefaultBaseURL
	}
	if resolved.Timeout <= 0 {
		resolved.Timeout = DefaultTimeout
	}
	if resolved.NavigationMode == "" {
		resolved.NavigationMode = ModeReference
	}
	if resolved.Logger == nil {
		resolved.Logger = logging.NewNopLogger()
	}
	return resolved
}
