package a7

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/veiloq/a7-client/pkg/logging"
	"github.com/veiloq/a7-client/pkg/ratelimit"
)

// snippetLimit caps how much of an error response body travels inside an
// APIError message.
const snippetLimit = 512

// Transport executes requests against the API root on behalf of the
// resource services. It is immutable after construction and safe for
// concurrent use; the embedded http.Client pools connections across calls.
type Transport struct {
	baseURL string
	token   string
	client  *http.Client
	limiter ratelimit.Limiter
	logger  logging.Logger

	navigationMode string
}

func newTransport(opts Options) (*Transport, error) {
	if opts.NavigationMode != ModeReference && opts.NavigationMode != ModeDetailed {
		return nil, newValidationError("navigation mode must be %q or %q, got %q",
			ModeReference, ModeDetailed, opts.NavigationMode)
	}

	limiter := ratelimit.NewUnlimited()
	if !opts.RateLimit.IsZero() {
		var err error
		limiter, err = ratelimit.NewTokenBucket(opts.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("configuring rate limit: %w", err)
		}
	}

	httpTransport := &http.Transport{
		Proxy: proxyFunc(opts.NoProxy),
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: opts.InsecureSkipVerify,
		},
	}

	return &Transport{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   normalizeToken(opts.Token),
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: httpTransport,
		},
		limiter:        limiter,
		logger:         opts.Logger,
		navigationMode: opts.NavigationMode,
	}, nil
}

// normalizeToken ensures the Authorization value carries exactly one
// "Bearer " prefix; platform-issued tokens ship both with and without it.
func normalizeToken(token string) string {
	if strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bearer " + token
}

// proxyFunc honors the configured bypass list before falling back to the
// process environment's proxy settings.
func proxyFunc(noProxy []string) func(*http.Request) (*url.URL, error) {
	if len(noProxy) == 0 {
		return http.ProxyFromEnvironment
	}
	return func(req *http.Request) (*url.URL, error) {
		if bypassProxy(req.URL.Hostname(), noProxy) {
			return nil, nil
		}
		return http.ProxyFromEnvironment(req)
	}
}

// bypassProxy matches a hostname against NO_PROXY-style patterns: "*"
// matches everything, a leading dot matches the domain suffix, and a bare
// host matches itself or any of its subdomains.
func bypassProxy(host string, patterns []string) bool {
	for _, raw := range patterns {
		pattern := strings.TrimSpace(raw)
		if pattern == "" {
			continue
		}
		if pattern == "*" {
			return true
		}
		if strings.HasPrefix(pattern, ".") {
			if strings.HasSuffix(host, pattern) || host == pattern[1:] {
				return true
			}
			continue
		}
		if host == pattern || strings.HasSuffix(host, "."+pattern) {
			return true
		}
	}
	return false
}

// do performs the HTTP call and maps any non-2xx outcome onto the error
// taxonomy. On success the caller owns the response body.
func (t *Transport) do(ctx context.Context, req *request) (*http.Response, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, t.mapTransportError(req.path(), err)
	}

	target := t.baseURL + req.path()
	if encoded := req.query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, req.body)
	if err != nil {
		return nil, &APIError{Kind: ErrValidation, Path: req.path(), Message: err.Error()}
	}
	httpReq.Header.Set("Authorization", t.token)
	httpReq.Header.Set("User-Agent", userAgent)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, t.mapTransportError(req.path(), err)
	}

	t.logger.Debug("request completed",
		logging.String("method", req.method),
		logging.String("path", req.path()),
		logging.Int("status", resp.StatusCode),
		logging.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, snippetLimit))
	resp.Body.Close()
	return nil, &APIError{
		Kind:       mapStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Path:       req.path(),
		Message:    strings.TrimSpace(string(snippet)),
	}
}

// mapTransportError classifies failures that produced no HTTP status.
func (t *Transport) mapTransportError(path string, err error) error {
	kind := ErrConnection
	if errors.Is(err, context.DeadlineExceeded) {
		kind = ErrTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		kind = ErrTimeout
	}
	return &APIError{Kind: kind, Path: path, Message: err.Error()}
}

// getJSON executes the request and decodes the JSON body into dst.
// A body that fails to decode on an endpoint that promised JSON is a
// server error, not a validation error.
func (t *Transport) getJSON(ctx context.Context, req *request, dst interface{}) error {
	resp, err := t.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: ErrConnection, Path: req.path(), Message: err.Error()}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &APIError{
			Kind:       ErrServer,
			StatusCode: resp.StatusCode,
			Path:       req.path(),
			Message:    fmt.Sprintf("malformed JSON response: %v", err),
		}
	}
	return nil
}

// text executes the request and returns the raw body for non-JSON
// formats (CSV exports, YAML algorithm sources).
func (t *Transport) text(ctx context.Context, req *request) (string, error) {
	resp, err := t.do(ctx, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Kind: ErrConnection, Path: req.path(), Message: err.Error()}
	}
	return string(body), nil
}

// navMode resolves a per-call navigation mode against the configured
// default and validates it.
func (t *Transport) navMode(mode string) (string, error) {
	if mode == "" {
		return t.navigationMode, nil
	}
	if mode != ModeReference && mode != ModeDetailed {
		return "", newValidationError("mode must be %q or %q, got %q", ModeReference, ModeDetailed, mode)
	}
	return mode, nil
}

// close releases pooled connections.
func (t *Transport) close() {
	t.client.CloseIdleConnections()
}
