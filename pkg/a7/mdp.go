package a7

import (
	"context"
	"net/http"
)

// MDPService wraps the Market Data Platform interface: the raw order book
// message feed for CME markets, navigated exchange → date → asset →
// security → sending time.
type MDPService struct {
	transport *Transport
}

// SendingTimesQuery holds the optional filters of SendingTimes. Zero
// values are omitted; an empty Mode falls back to the client's configured
// NavigationMode.
type SendingTimesQuery struct {
	Mode       string
	Limit      int
	From       string
	To         string
	MsgSeqNum  int
	TemplateID int
}

// SendingTimesResult carries the mode-dependent payload of SendingTimes:
// reference mode fills SendingTimes, detailed mode fills Packets.
type SendingTimesResult struct {
	SendingTimes []string      `json:"SendingTimes"`
	Packets      []interface{} `json:"Packets"`
}

// Exchanges lists the exchanges with MDP coverage, e.g. ["XCME", "NYUM"].
func (s *MDPService) Exchanges(ctx context.Context) ([]string, error) {
	var out struct {
		Exchanges []string `json:"Exchanges"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "mdp"), &out); err != nil {
		return nil, err
	}
	return out.Exchanges, nil
}

// Dates lists the trading days available for an exchange, YYYYMMDD.
func (s *MDPService) Dates(ctx context.Context, exchange string) ([]int, error) {
	var out struct {
		Dates []int `json:"Dates"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "mdp", exchange), &out); err != nil {
		return nil, err
	}
	return out.Dates, nil
}

// Assets lists the asset codes of an exchange on a trading day.
func (s *MDPService) Assets(ctx context.Context, exchange string, date int) ([]string, error) {
	var out struct {
		Assets []string `json:"Assets"`
	}
	req := newRequest(http.MethodGet, "v1", "mdp", exchange, itoa(date))
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.Assets, nil
}

// Securities lists the security IDs of an asset.
func (s *MDPService) Securities(ctx context.Context, exchange string, date int, asset string) ([]int64, error) {
	var out struct {
		SecurityIDs []int64 `json:"SecurityIDs"`
	}
	req := newRequest(http.MethodGet, "v1", "mdp", exchange, itoa(date), asset)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.SecurityIDs, nil
}

// SendingTimes lists the packet sending times of a security. Reference
// mode fills the timestamp slice, detailed mode the decoded packets.
func (s *MDPService) SendingTimes(ctx context.Context, exchange string, date int, asset string, securityID int64, query SendingTimesQuery) (*SendingTimesResult, error) {
	mode, err := s.transport.navMode(query.Mode)
	if err != nil {
		return nil, err
	}
	req := newRequest(http.MethodGet, "v1", "mdp", exchange, itoa(date), asset, itoa(securityID)).
		param("mode", mode).
		paramInt("limit", query.Limit).
		param("from", query.From).
		param("to", query.To).
		paramInt("msgSeqNum", query.MsgSeqNum).
		paramInt("templateID", query.TemplateID)

	out := &SendingTimesResult{}
	if err := s.transport.getJSON(ctx, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Message returns the MDP packet sent at the given sending time, with its
// Messages array.
func (s *MDPService) Message(ctx context.Context, exchange string, date int, asset string, securityID int64, sendingTime string) (interface{}, error) {
	var out interface{}
	req := newRequest(http.MethodGet, "v1", "mdp", exchange, itoa(date), asset, itoa(securityID), sendingTime)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
