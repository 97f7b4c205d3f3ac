// Package a7 is a client for the Deutsche Börse A7 analytics platform.
//
// A Client wraps one HTTP transport and exposes each of the platform's
// resource families as a service field:
//
//	client, err := a7.NewClient(&a7.Options{Token: os.Getenv("A7_API_TOKEN")})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	markets, err := client.RDI.Markets(ctx)
//
// Every operation blocks until the platform responds or the configured
// timeout elapses, and returns the decoded payload unchanged; the client
// performs no retries and no domain reinterpretation. Failures wrap one of
// the package's sentinel error kinds (ErrAuthentication, ErrNotFound,
// ErrValidation, ErrRateLimit, ErrServer, ErrTimeout, ErrConnection).
package a7

// Client is the entry point to the A7 API. All services share a single
// transport, so connections are pooled across resource families. A Client
// is safe for concurrent use.
type Client struct {
	transport *Transport

	// Reference data for T7 markets.
	RDI *RDIService
	// Security details for CME markets.
	SD *SDService
	// Algorithm management and execution.
	Algo *AlgoService
	// Raw order book messages for T7 markets.
	EOBI *EOBIService
	// Raw order book messages for CME markets.
	MDP *MDPService
	// Constructed order books for both venues.
	OrderBook *OrderBookService
	// Customer datasets.
	Dataset *DatasetService
	// Pre-computed market insights.
	Insights *InsightsService
	// Precalculation job management.
	Precalc *PrecalcService
	// Xetra auction data and simulation.
	Auction *AuctionService
}

// NewClient constructs a Client from opts. The token is the only required
// field; everything else falls back to production defaults. Construction
// fails before any service is usable if the token is missing.
func NewClient(opts *Options) (*Client, error) {
	if opts == nil || opts.Token == "" {
		return nil, newValidationError("token is required")
	}

	transport, err := newTransport(opts.withDefaults())
	if err != nil {
		return nil, err
	}

	return &Client{
		transport: transport,
		RDI:       &RDIService{transport: transport},
		SD:        &SDService{transport: transport},
		Algo:      &AlgoService{transport: transport},
		EOBI:      &EOBIService{transport: transport},
		MDP:       &MDPService{transport: transport},
		OrderBook: &OrderBookService{transport: transport},
		Dataset:   &DatasetService{transport: transport},
		Insights:  &InsightsService{transport: transport},
		Precalc:   &PrecalcService{transport: transport},
		Auction:   &AuctionService{transport: transport},
	}, nil
}

// Close releases the transport's pooled connections. Use it with defer so
// resources are released on every exit path; calling any service after
// Close is still valid but pays the connection setup cost again.
func (c *Client) Close() error {
	c.transport.close()
	return nil
}
