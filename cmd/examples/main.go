package main

import (
	"context"
	"fmt"
	"os"
	"time"

	retry "github.com/avast/retry-go"

	"github.com/veiloq/a7-client/pkg/a7"
	"github.com/veiloq/a7-client/pkg/config"
	"github.com/veiloq/a7-client/pkg/logging"
)

func main() {
	// Create logger
	logger := logging.NewZapLogger(
		logging.WithDevelopmentMode(),
		logging.WithDebugLevel(),
	)

	// Resolve options from .env / environment (A7_API_TOKEN etc.)
	options, err := config.FromEnv()
	if err != nil {
		logger.Error("failed to load configuration", logging.Error(err))
		os.Exit(1)
	}
	options.Logger = logger

	client, err := a7.NewClient(options)
	if err != nil {
		logger.Error("failed to create client", logging.Error(err))
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// List the T7 markets visible to this token.
	logger.Info("fetching markets")
	markets, err := client.EOBI.Markets(ctx)
	if err != nil {
		logger.Error("failed to list markets", logging.Error(err))
		os.Exit(1)
	}
	for _, market := range markets {
		logger.Info("market", logging.String("marketID", market))
	}

	// Walk the EOBI hierarchy down to individual order book messages.
	const (
		marketID        = "XEUR"
		date            = 20230804
		marketSegmentID = 52885
		securityID      = int64(2504978)
	)

	logger.Info("fetching transact times",
		logging.String("marketID", marketID),
		logging.Int("date", date),
	)
	times, err := client.EOBI.TransactTimes(ctx, marketID, date, marketSegmentID, securityID,
		a7.TransactTimesQuery{Limit: 5})
	if err != nil {
		logger.Error("failed to list transact times", logging.Error(err))
		os.Exit(1)
	}
	for _, transactTime := range times {
		logger.Info("transact time", logging.String("transactTime", transactTime))
	}

	if len(times) > 0 {
		seqs, err := client.EOBI.ApplSeqNums(ctx, marketID, date, marketSegmentID, securityID,
			times[0], a7.SequenceQuery{})
		if err != nil {
			logger.Error("failed to list appl seq nums", logging.Error(err))
			os.Exit(1)
		}
		logger.Info("application sequence numbers",
			logging.Int("count", len(seqs.ApplSeqNums)))
	}

	// The client never retries on its own; throttled or transient server
	// failures surface as ErrRateLimit / ErrServer and the retry policy is
	// the caller's. A typical pattern with retry-go:
	var details interface{}
	err = retry.Do(
		func() error {
			var callErr error
			details, callErr = client.RDI.SecurityDetails(ctx, marketID, date, marketSegmentID, securityID)
			return callErr
		},
		retry.Context(ctx),
		retry.Attempts(4),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(func(err error) bool {
			return a7.IsRateLimit(err) || a7.IsServer(err)
		}),
	)
	switch {
	case a7.IsNotFound(err):
		logger.Warn("no reference data at these coordinates")
	case err != nil:
		logger.Error("failed to fetch security details", logging.Error(err))
		os.Exit(1)
	default:
		fmt.Printf("security details: %v\n", details)
	}

	logger.Info("done")
}
