package a7

import (
	"context"
	"net/http"
)

// RDIService wraps the Reference Data Interface v2: static instrument and
// market metadata for the T7 trading system.
//
// RDI payloads are returned exactly as the platform sends them; the
// documented shapes live in the platform API reference, not in this
// client.
type RDIService struct {
	transport *Transport
}

// Markets lists the available markets, e.g. ["XEUR", "XETR", "XFRA"].
func (s *RDIService) Markets(ctx context.Context) (interface{}, error) {
	var out interface{}
	req := newRequest(http.MethodGet, "v2", "rdi").withSlash()
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarketSegments lists the market segments of a market on a trading day
// (date in YYYYMMDD form).
func (s *RDIService) MarketSegments(ctx context.Context, marketID string, date int) (interface{}, error) {
	var out interface{}
	req := newRequest(http.MethodGet, "v2", "rdi", marketID, itoa(date)).withSlash()
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SecurityDetails returns the RDI messages describing one security.
func (s *RDIService) SecurityDetails(ctx context.Context, marketID string, date int, marketSegmentID int, securityID int64) (interface{}, error) {
	var out interface{}
	req := newRequest(http.MethodGet, "v2", "rdi", marketID, itoa(date), itoa(marketSegmentID), itoa(securityID))
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InstrumentSnapshot returns the instrument snapshot message identified by
// its sequence number.
func (s *RDIService) InstrumentSnapshot(ctx context.Context, marketID string, date int, marketSegmentID int, securityID int64, msgSeqNum int) (interface{}, error) {
	var out interface{}
	req := newRequest(http.MethodGet, "v2", "rdi", marketID, itoa(date), itoa(marketSegmentID), itoa(securityID), itoa(msgSeqNum))
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
