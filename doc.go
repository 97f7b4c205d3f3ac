// Package a7client is a Go SDK for the Deutsche Börse A7 analytics
// platform: market reference data, raw order book messages, algorithm
// execution, datasets, market insights and auction simulation, served over
// an HTTPS REST API with bearer token authentication.
//
// The importable client lives in pkg/a7. One Client owns one HTTP
// transport and exposes each of the platform's ten resource families as a
// service field:
//
//	client, err := a7.NewClient(&a7.Options{Token: token})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	markets, err := client.EOBI.Markets(ctx)
//	times, err := client.EOBI.TransactTimes(ctx, "XETR", 20230804, 52885, 2504978,
//	    a7.TransactTimesQuery{Limit: 15})
//
// # Error handling
//
// Every failure wraps exactly one of the sentinel kinds defined in pkg/a7,
// so classification is uniform across resources:
//
//	_, err := client.RDI.SecurityDetails(ctx, "XEUR", 20200106, 688, 4611674)
//	switch {
//	case a7.IsNotFound(err):
//	    // no data at these coordinates
//	case a7.IsRateLimit(err):
//	    // throttled; back off and retry if desired
//	case a7.IsAuthentication(err):
//	    // token invalid or expired
//	}
//
// The client never retries and never reinterprets payloads; whatever the
// platform returns is handed to the caller decoded but otherwise
// untouched. Retry and backoff policy belong to the application; see
// cmd/examples for a caller-side retry pattern.
//
// # Configuration
//
// The client consumes a fully resolved a7.Options value and reads no
// environment variables itself. pkg/config is the surrounding loader that
// builds Options from a YAML file and/or the A7_* environment variables.
package a7client
