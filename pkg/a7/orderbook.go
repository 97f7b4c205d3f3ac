package a7

import (
	"context"
	"net/http"
)

// Book aggregation levels accepted by the order book endpoints.
const (
	BookAggregated = "aggregated"
	BookComplete   = "complete"
)

const maxBookLimit = 10000

// OrderBookService wraps the constructed order book interface: books
// rebuilt server-side from the EOBI and MDP message feeds. The client
// fetches them as-is and performs no reconstruction of its own.
type OrderBookService struct {
	transport *Transport
}

// BookQuery holds the optional parameters shared by T7 and CME book
// requests. From/To are nanosecond timestamps as strings; with no From the
// first book of the day is returned. Limit defaults to 1 (a single book
// object); larger limits return an array. Levels defaults to 10.
// Indicatives is only honored by T7 books.
type BookQuery struct {
	From        string
	To          string
	Limit       int
	Levels      int
	Book        string
	Trades      bool
	Indicatives bool
}

func (q *BookQuery) normalize() error {
	if q.Limit == 0 {
		q.Limit = 1
	}
	if q.Limit < 0 || q.Limit > maxBookLimit {
		return newValidationError("limit must be between 1 and %d, got %d", maxBookLimit, q.Limit)
	}
	if q.Levels == 0 {
		q.Levels = 10
	}
	if q.Book == "" {
		q.Book = BookAggregated
	}
	if q.Book != BookAggregated && q.Book != BookComplete {
		return newValidationError("orderbook must be %q or %q, got %q", BookAggregated, BookComplete, q.Book)
	}
	return nil
}

// T7 returns constructed order books for T7 markets (XEUR, XETR). A
// single book decodes as an object, limits above one as an array; the
// payload is passed through either way.
func (s *OrderBookService) T7(ctx context.Context, marketID string, date int, marketSegmentID int, securityID int64, query BookQuery) (interface{}, error) {
	if err := query.normalize(); err != nil {
		return nil, err
	}
	req := newRequest(http.MethodGet, "v1", "ob", marketID, itoa(date), itoa(marketSegmentID), itoa(securityID)).
		paramInt("limit", query.Limit).
		paramInt("levels", query.Levels).
		param("orderbook", query.Book).
		paramBool("trades", query.Trades).
		paramBool("indicatives", query.Indicatives).
		param("from", query.From).
		param("to", query.To)

	var out interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CME returns constructed order books for CME markets.
func (s *OrderBookService) CME(ctx context.Context, exchange string, date int, asset string, securityID int64, query BookQuery) (interface{}, error) {
	if err := query.normalize(); err != nil {
		return nil, err
	}
	req := newRequest(http.MethodGet, "v1", "ob", exchange, itoa(date), asset, itoa(securityID)).
		paramInt("limit", query.Limit).
		paramInt("levels", query.Levels).
		param("orderbook", query.Book).
		paramBool("trades", query.Trades).
		param("from", query.From).
		param("to", query.To)

	var out interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
