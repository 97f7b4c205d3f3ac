package a7

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		status    int
		predicate func(error) bool
		name      string
	}{
		{400, IsValidation, "bad request"},
		{401, IsAuthentication, "unauthorized"},
		{403, IsAuthentication, "forbidden"},
		{404, IsNotFound, "not found"},
		{422, IsValidation, "unprocessable"},
		{429, IsRateLimit, "throttled"},
		{500, IsServer, "internal error"},
		{503, IsServer, "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, respondStatus(tt.status, `{"detail": "nope"}`))

			_, err := client.EOBI.Markets(context.Background())
			require.Error(t, err)
			assert.True(t, tt.predicate(err), "unexpected kind: %v", err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "/v1/eobi", apiErr.Path)
			assert.Contains(t, apiErr.Message, "nope")
		})
	}
}

func TestErrorBodySnippetIsBounded(t *testing.T) {
	client, _ := newTestServer(t, respondStatus(500, strings.Repeat("x", 4096)))

	_, err := client.EOBI.Markets(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Len(t, apiErr.Message, snippetLimit)
}

func TestTimeoutIsDistinctFromServerError(t *testing.T) {
	client, _ := newTestServerWithOptions(t,
		func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(500 * time.Millisecond)
			io.WriteString(w, `{"MarketIDs": []}`)
		},
		&Options{Token: "test-token", Timeout: 50 * time.Millisecond})

	_, err := client.EOBI.Markets(context.Background())
	require.Error(t, err)
	assert.True(t, IsTimeout(err), "expected timeout, got %v", err)
	assert.False(t, IsServer(err))
}

func TestExpiredDeadlineMapsToTimeout(t *testing.T) {
	// A deadline that has already passed fails before the request leaves
	// the process; that is still a timeout, not a connection failure.
	client, recorder := newTestServer(t, respondJSON(`{"MarketIDs": []}`))

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := client.EOBI.Markets(ctx)
	require.Error(t, err)
	assert.True(t, IsTimeout(err), "expected timeout, got %v", err)
	assert.Zero(t, recorder.count())
}

func TestMalformedJSONIsServerError(t *testing.T) {
	client, _ := newTestServer(t, respondStatus(200, "<html>gateway glitch</html>"))

	_, err := client.EOBI.Markets(context.Background())
	require.Error(t, err)
	assert.True(t, IsServer(err))
	assert.Contains(t, err.Error(), "malformed JSON")
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "Bearer abc", normalizeToken("abc"))
	assert.Equal(t, "Bearer abc", normalizeToken("Bearer abc"))
}

func TestBypassProxy(t *testing.T) {
	tests := []struct {
		host     string
		patterns []string
		want     bool
	}{
		{"a7.deutsche-boerse.com", nil, false},
		{"a7.deutsche-boerse.com", []string{"*"}, true},
		{"a7.deutsche-boerse.com", []string{"a7.deutsche-boerse.com"}, true},
		{"a7.deutsche-boerse.com", []string{"deutsche-boerse.com"}, true},
		{"a7.deutsche-boerse.com", []string{".deutsche-boerse.com"}, true},
		{"deutsche-boerse.com", []string{".deutsche-boerse.com"}, true},
		{"a7.deutsche-boerse.de", []string{"deutsche-boerse.com"}, false},
		{"evil-deutsche-boerse.com", []string{"deutsche-boerse.com"}, false},
		{"a7.deutsche-boerse.com", []string{" ", "", "a7.deutsche-boerse.com "}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bypassProxy(tt.host, tt.patterns),
			"host %q patterns %v", tt.host, tt.patterns)
	}
}

func TestNavModeResolution(t *testing.T) {
	tr := &Transport{navigationMode: ModeReference}

	mode, err := tr.navMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeReference, mode)

	mode, err = tr.navMode(ModeDetailed)
	require.NoError(t, err)
	assert.Equal(t, ModeDetailed, mode)

	_, err = tr.navMode("verbose")
	assert.True(t, IsValidation(err))
}

func TestConfiguredNavigationModeIsSent(t *testing.T) {
	client, recorder := newTestServerWithOptions(t,
		respondJSON(`{"TransactTimes": []}`),
		&Options{Token: "test-token", NavigationMode: ModeDetailed})

	_, err := client.EOBI.TransactTimes(context.Background(), "XEUR", 20230804, 52885, 2504978, TransactTimesQuery{})
	require.NoError(t, err)
	assert.Equal(t, ModeDetailed, recorder.last().Query.Get("mode"))
}
