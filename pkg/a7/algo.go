package a7

import (
	"context"
	"net/http"
	"strings"
)

// Metadata modes accepted by the algorithm endpoints.
const (
	MetadataCompact = "compact"
	MetadataFull    = "full"
)

// AlgoService wraps algorithm management and execution: server-side
// analytics run against the raw order book data, addressed as owner/name.
type AlgoService struct {
	transport *Transport
}

func validateMetadataMode(mode string) error {
	if mode != MetadataCompact && mode != MetadataFull {
		return newValidationError("mode must be %q or %q, got %q", MetadataCompact, MetadataFull, mode)
	}
	return nil
}

// Owners lists the algorithm owners visible to the current token.
func (s *AlgoService) Owners(ctx context.Context) ([]string, error) {
	var out struct {
		Owners []string `json:"Owners"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "algo"), &out); err != nil {
		return nil, err
	}
	return out.Owners, nil
}

// Algorithms lists the algorithms published by an owner. Mode is
// MetadataCompact or MetadataFull; empty means compact.
func (s *AlgoService) Algorithms(ctx context.Context, owner, mode string) ([]string, error) {
	if mode == "" {
		mode = MetadataCompact
	}
	if err := validateMetadataMode(mode); err != nil {
		return nil, err
	}
	var out struct {
		Algos []string `json:"Algos"`
	}
	req := newRequest(http.MethodGet, "v1", "algo", owner).param("mode", mode)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.Algos, nil
}

// Metadata returns an algorithm's definition: parameters, result columns,
// and, in full mode, its source. Mode defaults to compact.
func (s *AlgoService) Metadata(ctx context.Context, owner, algorithm, mode string) (map[string]interface{}, error) {
	if mode == "" {
		mode = MetadataCompact
	}
	if err := validateMetadataMode(mode); err != nil {
		return nil, err
	}
	var out map[string]interface{}
	req := newRequest(http.MethodGet, "v1", "algo", owner, algorithm).param("mode", mode)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Run executes an algorithm. Params are passed through as query
// parameters; common keys are marketId, exchange, date, marketSegmentId,
// asset and securityId, plus whatever the algorithm itself declares.
func (s *AlgoService) Run(ctx context.Context, owner, algorithm string, params map[string]string) (interface{}, error) {
	req := newRequest(http.MethodGet, "v1", "algo", owner, algorithm, "run")
	for key, value := range params {
		req.param(key, value)
	}
	var out interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RunTopLevel runs the public top_level algorithm for one security: best
// bid and ask over the trading day.
func (s *AlgoService) RunTopLevel(ctx context.Context, marketID string, date int, marketSegmentID int, securityID int64) (interface{}, error) {
	return s.Run(ctx, "a7", "top_level", map[string]string{
		"marketId":        marketID,
		"date":            itoa(date),
		"marketSegmentId": itoa(marketSegmentID),
		"securityId":      itoa(securityID),
	})
}

// RunPriceLevel runs the public PriceLevelv2 algorithm: order book depth
// down to the given number of levels.
func (s *AlgoService) RunPriceLevel(ctx context.Context, marketID string, date int, marketSegmentID int, securityID int64, levels int) (interface{}, error) {
	if levels <= 0 {
		levels = 5
	}
	return s.Run(ctx, "a7", "PriceLevelv2", map[string]string{
		"marketId":        marketID,
		"date":            itoa(date),
		"marketSegmentId": itoa(marketSegmentID),
		"securityId":      itoa(securityID),
		"Level":           itoa(levels),
	})
}

// Upload creates or replaces an algorithm from its YAML source. The
// response reports whether the source was saved, compiled and runnable.
func (s *AlgoService) Upload(ctx context.Context, owner, algorithm, yamlSource string) (map[string]interface{}, error) {
	req := newRequest(http.MethodPut, "v1", "algo", owner, algorithm).
		withBody(strings.NewReader(yamlSource), "application/yaml")
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Download fetches an algorithm's YAML source verbatim.
func (s *AlgoService) Download(ctx context.Context, owner, algorithm string) (string, error) {
	return s.transport.text(ctx, newRequest(http.MethodGet, "v1", "algo", owner, algorithm, "download"))
}

// Delete removes an algorithm.
func (s *AlgoService) Delete(ctx context.Context, owner, algorithm string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodDelete, "v1", "algo", owner, algorithm), &out); err != nil {
		return nil, err
	}
	return out, nil
}
