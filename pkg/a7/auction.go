package a7

import (
	"context"
	"net/http"
	"strconv"
)

// Segment listing modes for auction market segments.
const (
	SegmentsByID     = "segment"
	SegmentsBySymbol = "symbol"
)

// Order sides for auction simulation.
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// AuctionService wraps the Xetra auction simulation interface: historical
// auction states for T7 cash markets, optionally re-uncrossed with one
// additional order injected into the book.
type AuctionService struct {
	transport *Transport
}

// SimulationOrder is the additional order injected into an auction
// simulation. Side is required; Priority of zero means best priority at
// the given price.
type SimulationOrder struct {
	Side     string
	Price    float64
	Quantity int
	Priority int
}

func (o *SimulationOrder) validate() error {
	if o.Side != SideBuy && o.Side != SideSell {
		return newValidationError("side must be %q or %q, got %q", SideBuy, SideSell, o.Side)
	}
	return nil
}

func (o *SimulationOrder) apply(req *request) {
	req.param("side", o.Side)
	if o.Price != 0 {
		req.param("px", strconv.FormatFloat(o.Price, 'f', -1, 64))
	}
	req.paramInt("qty", o.Quantity)
	req.paramInt("prio", o.Priority)
}

// Exchanges lists the exchanges with auction coverage, e.g. ["XETR"].
func (s *AuctionService) Exchanges(ctx context.Context) ([]string, error) {
	var out []string
	req := newRequest(http.MethodGet, "v1", "simulation", "auction").withSlash()
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dates lists the trading days available for an exchange, YYYYMMDD.
func (s *AuctionService) Dates(ctx context.Context, exchange string) ([]int, error) {
	var out []int
	req := newRequest(http.MethodGet, "v1", "simulation", "auction", exchange).withSlash()
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarketSegments lists a trading day's market segments. Mode SegmentsByID
// (default) returns segment IDs, SegmentsBySymbol returns trading symbols.
func (s *AuctionService) MarketSegments(ctx context.Context, exchange string, date int, mode string) ([]string, error) {
	if mode == "" {
		mode = SegmentsByID
	}
	if mode != SegmentsByID && mode != SegmentsBySymbol {
		return nil, newValidationError("mode must be %q or %q, got %q", SegmentsByID, SegmentsBySymbol, mode)
	}
	var out []string
	req := newRequest(http.MethodGet, "v1", "simulation", "auction", exchange, itoa(date)).
		withSlash().
		param("mode", mode)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Securities lists the security IDs of a market segment.
func (s *AuctionService) Securities(ctx context.Context, exchange string, date int, marketSegmentID int) ([]int64, error) {
	var out []int64
	req := newRequest(http.MethodGet, "v1", "simulation", "auction", exchange, itoa(date), itoa(marketSegmentID)).withSlash()
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Security returns a security's reference data by segment and security ID.
func (s *AuctionService) Security(ctx context.Context, exchange string, date int, marketSegmentID int, securityID int64) (map[string]interface{}, error) {
	var out map[string]interface{}
	req := newRequest(http.MethodGet, "v1", "simulation", "auction", exchange, itoa(date), itoa(marketSegmentID), itoa(securityID))
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SecurityBySymbol returns a security's reference data by trading symbol.
func (s *AuctionService) SecurityBySymbol(ctx context.Context, exchange string, date int, symbol string) (map[string]interface{}, error) {
	var out map[string]interface{}
	req := newRequest(http.MethodGet, "v1", "simulation", "auction", exchange, itoa(date), symbol)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AuctionTypes lists the auctions recorded for a security, e.g.
// ["opening", "intraday", "closing"].
func (s *AuctionService) AuctionTypes(ctx context.Context, exchange string, date int, marketSegmentID int, securityID int64) ([]string, error) {
	var out []string
	req := newRequest(http.MethodGet, "v1", "simulation", "auction", exchange, itoa(date), itoa(marketSegmentID), itoa(securityID)).withSlash()
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AuctionTypesBySymbol lists the auctions recorded for a security by
// trading symbol.
func (s *AuctionService) AuctionTypesBySymbol(ctx context.Context, exchange string, date int, symbol string) ([]string, error) {
	var out []string
	req := newRequest(http.MethodGet, "v1", "simulation", "auction", exchange, itoa(date), symbol).withSlash()
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Auction returns the historical auction state, and, when order is
// non-nil, the simulated uncrossing with that order added to the book.
func (s *AuctionService) Auction(ctx context.Context, exchange string, date int, marketSegmentID int, securityID int64, auctionType string, order *SimulationOrder) (map[string]interface{}, error) {
	req := newRequest(http.MethodGet, "v1", "simulation", "auction", exchange, itoa(date), itoa(marketSegmentID), itoa(securityID), auctionType)
	if order != nil {
		if err := order.validate(); err != nil {
			return nil, err
		}
		order.apply(req)
	}
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AuctionBySymbol is Auction addressed by trading symbol.
func (s *AuctionService) AuctionBySymbol(ctx context.Context, exchange string, date int, symbol, auctionType string, order *SimulationOrder) (map[string]interface{}, error) {
	req := newRequest(http.MethodGet, "v1", "simulation", "auction", exchange, itoa(date), symbol, auctionType)
	if order != nil {
		if err := order.validate(); err != nil {
			return nil, err
		}
		order.apply(req)
	}
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
