package a7

import (
	"context"
	"net/http"
)

// Roll comparison methods for Pace of the Roll quantiles.
const (
	CompareConsecutive = "c"
	CompareSameMonth   = "s"
)

// Latency histogram regimes and target actions.
const (
	RegimeFast = "fast"
	RegimeSlow = "slow"

	ActionNew    = "new"
	ActionModify = "modify"
	ActionDelete = "delete"
)

// InsightsService wraps the pre-computed market insights: Pace of the Roll
// open-interest analytics and participant latency histograms.
type InsightsService struct {
	transport *Transport
}

// PORQuery tunes a Pace of the Roll read. Days is the window before
// expiry (1-31, default 10), N the number of historical rolls feeding the
// quantiles (default 20), Compare the roll selection method (consecutive
// or same-month, default consecutive).
type PORQuery struct {
	Days    int
	N       int
	Compare string
}

// PORMarketSegments lists the market segments with Pace of the Roll
// coverage, e.g. ["FDAX", "FGBL"].
func (s *InsightsService) PORMarketSegments(ctx context.Context) ([]string, error) {
	var out struct {
		MarketSegments []string `json:"MarketSegments"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "insights", "por"), &out); err != nil {
		return nil, err
	}
	return out.MarketSegments, nil
}

// PORRolls lists the available rolls of a market segment in YYYYMM form.
func (s *InsightsService) PORRolls(ctx context.Context, marketSegment string) ([]int, error) {
	var out struct {
		Rolls []int `json:"Rolls"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "insights", "por", marketSegment), &out); err != nil {
		return nil, err
	}
	return out.Rolls, nil
}

// PORData returns the roll ratio series and historical quantiles for one
// roll (YYYYMM).
func (s *InsightsService) PORData(ctx context.Context, marketSegment string, roll int, query PORQuery) (map[string]interface{}, error) {
	if query.Days == 0 {
		query.Days = 10
	}
	if query.Days < 1 || query.Days > 31 {
		return nil, newValidationError("days must be between 1 and 31, got %d", query.Days)
	}
	if query.N == 0 {
		query.N = 20
	}
	if query.Compare == "" {
		query.Compare = CompareConsecutive
	}
	if query.Compare != CompareConsecutive && query.Compare != CompareSameMonth {
		return nil, newValidationError("comp must be %q or %q, got %q", CompareConsecutive, CompareSameMonth, query.Compare)
	}

	req := newRequest(http.MethodGet, "v1", "insights", "por", marketSegment, itoa(roll)).
		paramInt("days", query.Days).
		paramInt("n", query.N).
		param("comp", query.Compare)

	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LatencyHistogram returns the distribution of participant reaction times
// between a market data update in the trigger product and order flow in
// the target product. Regime selects the fast (nanosecond resolution) or
// slow histogram, action the order action measured. JSON format returns
// the decoded payload, CSV format returns the export as a string.
func (s *InsightsService) LatencyHistogram(ctx context.Context, date int, trigger, target, regime, action, format string) (interface{}, error) {
	if regime != RegimeFast && regime != RegimeSlow {
		return nil, newValidationError("regime must be %q or %q, got %q", RegimeFast, RegimeSlow, regime)
	}
	if action != ActionNew && action != ActionModify && action != ActionDelete {
		return nil, newValidationError("target action must be %q, %q or %q, got %q", ActionNew, ActionModify, ActionDelete, action)
	}
	if format == "" {
		format = FormatJSON
	}
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	req := newRequest(http.MethodGet, "v1", "insights", "latencies", itoa(date), trigger, target, regime, action).
		param("format", format)

	if format == FormatCSV {
		return s.transport.text(ctx, req)
	}
	var out interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
