package a7

import (
	"context"
	"net/http"
)

// EOBIService wraps the Enhanced Order Book Interface: the un-normalized
// historical order book message feed for T7 markets. Navigation narrows
// from market to date to segment to security, then walks the message tree
// by transact time, application sequence number and message sequence
// number.
type EOBIService struct {
	transport *Transport
}

// TransactTimesQuery holds the optional filters of TransactTimes. Zero
// values are omitted from the request; an empty Mode falls back to the
// client's configured NavigationMode.
type TransactTimesQuery struct {
	Mode             string
	Limit            int
	From             string
	To               string
	ApplSeqNumFilter string
}

// SequenceQuery holds the optional filters shared by ApplSeqNums and
// MsgSeqNums.
type SequenceQuery struct {
	Mode             string
	MsgSeqNumFilter  string
	TemplateIDFilter string
}

// SequenceResult carries the mode-dependent payload of the sequence
// navigation endpoints: reference mode fills the number slice, detailed
// mode fills the decoded packets or messages.
type SequenceResult struct {
	ApplSeqNums []int64       `json:"ApplSeqNums"`
	MsgSeqNums  []int64       `json:"MsgSeqNums"`
	Packets     []interface{} `json:"Packets"`
	Messages    []interface{} `json:"Messages"`
}

// Markets lists the markets with EOBI coverage, e.g. ["XEUR", "XETR"].
func (s *EOBIService) Markets(ctx context.Context) ([]string, error) {
	var out struct {
		MarketIDs []string `json:"MarketIDs"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "eobi"), &out); err != nil {
		return nil, err
	}
	return out.MarketIDs, nil
}

// Dates lists the trading days available for a market, YYYYMMDD.
func (s *EOBIService) Dates(ctx context.Context, marketID string) ([]int, error) {
	var out struct {
		Dates []int `json:"Dates"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "eobi", marketID), &out); err != nil {
		return nil, err
	}
	return out.Dates, nil
}

// MarketSegments lists the market segments of a market on a trading day.
func (s *EOBIService) MarketSegments(ctx context.Context, marketID string, date int) ([]int, error) {
	var out struct {
		MarketSegmentIDs []int `json:"MarketSegmentIDs"`
	}
	req := newRequest(http.MethodGet, "v1", "eobi", marketID, itoa(date))
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.MarketSegmentIDs, nil
}

// Securities lists the security IDs of a market segment.
func (s *EOBIService) Securities(ctx context.Context, marketID string, date int, marketSegmentID int) ([]int64, error) {
	var out struct {
		SecurityIDs []int64 `json:"SecurityIDs"`
	}
	req := newRequest(http.MethodGet, "v1", "eobi", marketID, itoa(date), itoa(marketSegmentID))
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.SecurityIDs, nil
}

// TransactTimes lists the transaction times of a security as nanosecond
// timestamps since 1970, returned as strings to survive JSON number
// precision.
func (s *EOBIService) TransactTimes(ctx context.Context, marketID string, date int, marketSegmentID int, securityID int64, query TransactTimesQuery) ([]string, error) {
	mode, err := s.transport.navMode(query.Mode)
	if err != nil {
		return nil, err
	}
	req := newRequest(http.MethodGet, "v1", "eobi", marketID, itoa(date), itoa(marketSegmentID), itoa(securityID)).
		param("mode", mode).
		paramInt("limit", query.Limit).
		param("from", query.From).
		param("to", query.To).
		param("applSeqNumFilter", query.ApplSeqNumFilter)

	var out struct {
		TransactTimes []string `json:"TransactTimes"`
	}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.TransactTimes, nil
}

// ApplSeqNums lists the application sequence numbers at a transact time.
// Reference mode fills SequenceResult.ApplSeqNums, detailed mode fills
// SequenceResult.Packets.
func (s *EOBIService) ApplSeqNums(ctx context.Context, marketID string, date int, marketSegmentID int, securityID int64, transactTime string, query SequenceQuery) (*SequenceResult, error) {
	mode, err := s.transport.navMode(query.Mode)
	if err != nil {
		return nil, err
	}
	req := newRequest(http.MethodGet, "v1", "eobi", marketID, itoa(date), itoa(marketSegmentID), itoa(securityID), transactTime).
		param("mode", mode).
		param("msgSeqNumFilter", query.MsgSeqNumFilter).
		param("templateIdFilter", query.TemplateIDFilter)

	out := &SequenceResult{}
	if err := s.transport.getJSON(ctx, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// MsgSeqNums lists the message sequence numbers within an application
// sequence. Reference mode fills SequenceResult.MsgSeqNums, detailed mode
// fills SequenceResult.Messages.
func (s *EOBIService) MsgSeqNums(ctx context.Context, marketID string, date int, marketSegmentID int, securityID int64, transactTime string, applSeqNum int64, query SequenceQuery) (*SequenceResult, error) {
	mode, err := s.transport.navMode(query.Mode)
	if err != nil {
		return nil, err
	}
	req := newRequest(http.MethodGet, "v1", "eobi", marketID, itoa(date), itoa(marketSegmentID), itoa(securityID), transactTime, itoa(applSeqNum)).
		param("mode", mode).
		param("templateIdFilter", query.TemplateIDFilter)

	out := &SequenceResult{}
	if err := s.transport.getJSON(ctx, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Message returns one EOBI message by its full coordinate set.
func (s *EOBIService) Message(ctx context.Context, marketID string, date int, marketSegmentID int, securityID int64, transactTime string, applSeqNum int64, msgSeqNum int) (interface{}, error) {
	var out interface{}
	req := newRequest(http.MethodGet, "v1", "eobi", marketID, itoa(date), itoa(marketSegmentID), itoa(securityID), transactTime, itoa(applSeqNum), itoa(msgSeqNum))
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
