package a7

import (
	"context"
	"encoding/json"
	"net/http"
)

// SDService wraps the CME Security Details v2 interface: reference data
// for CME Group markets, the CME counterpart of RDI.
type SDService struct {
	transport *Transport
}

// listOrEnvelope decodes endpoints that historically returned either a
// bare JSON array or an object wrapping the array under a single key.
// Both shapes are live on the platform, so the client accepts both.
func (s *SDService) listOrEnvelope(ctx context.Context, req *request, key string, dst interface{}) error {
	var raw json.RawMessage
	if err := s.transport.getJSON(ctx, req, &raw); err != nil {
		return err
	}
	if json.Unmarshal(raw, dst) == nil {
		return nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &APIError{Kind: ErrServer, Path: req.path(), Message: "malformed JSON response: " + err.Error()}
	}
	wrapped, ok := envelope[key]
	if !ok {
		return &APIError{Kind: ErrServer, Path: req.path(), Message: "response missing " + key}
	}
	if err := json.Unmarshal(wrapped, dst); err != nil {
		return &APIError{Kind: ErrServer, Path: req.path(), Message: "malformed JSON response: " + err.Error()}
	}
	return nil
}

// Exchanges lists the available CME exchanges, e.g. ["XCME", "XCBT"].
func (s *SDService) Exchanges(ctx context.Context) ([]string, error) {
	var out []string
	req := newRequest(http.MethodGet, "v2", "sd").withSlash()
	if err := s.listOrEnvelope(ctx, req, "Exchanges", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dates lists the trading days available for an exchange, YYYYMMDD.
func (s *SDService) Dates(ctx context.Context, exchange string) ([]int, error) {
	var out []int
	req := newRequest(http.MethodGet, "v2", "sd", exchange).withSlash()
	if err := s.listOrEnvelope(ctx, req, "Dates", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Assets lists the assets (product IDs) traded on an exchange on a day.
func (s *SDService) Assets(ctx context.Context, exchange string, date int) ([]string, error) {
	var out []string
	req := newRequest(http.MethodGet, "v2", "sd", exchange, itoa(date)).withSlash()
	if err := s.listOrEnvelope(ctx, req, "Assets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Securities lists the security IDs belonging to an asset. IDs come back
// as strings: some exceed a float64's integer range and would otherwise be
// damaged in decoding.
func (s *SDService) Securities(ctx context.Context, exchange string, date int, asset string) ([]string, error) {
	var out []string
	req := newRequest(http.MethodGet, "v2", "sd", exchange, itoa(date), asset).withSlash()
	if err := s.listOrEnvelope(ctx, req, "SecurityIDs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllSecurityDetails returns the detail records of every security in an
// asset.
func (s *SDService) AllSecurityDetails(ctx context.Context, exchange string, date int, asset string) (interface{}, error) {
	var out interface{}
	req := newRequest(http.MethodGet, "v2", "sd", exchange, itoa(date), asset)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SecurityDetails returns the detail record of one security.
func (s *SDService) SecurityDetails(ctx context.Context, exchange string, date int, asset, securityID string) (interface{}, error) {
	var out interface{}
	req := newRequest(http.MethodGet, "v2", "sd", exchange, itoa(date), asset, securityID)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
