package a7

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEOBINavigation(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{
		"MarketIDs": ["XEUR"],
		"Dates": [20230804],
		"MarketSegmentIDs": [52885],
		"SecurityIDs": [2504978]
	}`))
	ctx := context.Background()

	markets, err := client.EOBI.Markets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"XEUR"}, markets)
	assert.Equal(t, "/v1/eobi", recorder.last().Path)

	dates, err := client.EOBI.Dates(ctx, "XEUR")
	require.NoError(t, err)
	assert.Equal(t, []int{20230804}, dates)
	assert.Equal(t, "/v1/eobi/XEUR", recorder.last().Path)

	segments, err := client.EOBI.MarketSegments(ctx, "XEUR", 20230804)
	require.NoError(t, err)
	assert.Equal(t, []int{52885}, segments)
	assert.Equal(t, "/v1/eobi/XEUR/20230804", recorder.last().Path)

	securities, err := client.EOBI.Securities(ctx, "XEUR", 20230804, 52885)
	require.NoError(t, err)
	assert.Equal(t, []int64{2504978}, securities)
	assert.Equal(t, "/v1/eobi/XEUR/20230804/52885", recorder.last().Path)
}

func TestEOBITransactTimesQuery(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{"TransactTimes": ["1691136000000000001"]}`))

	times, err := client.EOBI.TransactTimes(context.Background(), "XEUR", 20230804, 52885, 2504978,
		TransactTimesQuery{Limit: 15, From: "1691136000000000000"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1691136000000000001"}, times)

	req := recorder.last()
	assert.Equal(t, "/v1/eobi/XEUR/20230804/52885/2504978", req.Path)
	assert.Equal(t, ModeReference, req.Query.Get("mode"))
	assert.Equal(t, "15", req.Query.Get("limit"))
	assert.Equal(t, "1691136000000000000", req.Query.Get("from"))
	assert.NotContains(t, req.Query, "to")
	assert.NotContains(t, req.Query, "applSeqNumFilter")
}

func TestEOBITransactTimesRejectsBadModeLocally(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{}`))

	_, err := client.EOBI.TransactTimes(context.Background(), "XEUR", 20230804, 52885, 2504978,
		TransactTimesQuery{Mode: "verbose"})
	assert.True(t, IsValidation(err))
	assert.Zero(t, recorder.count(), "no request may leave the process on invalid input")
}

func TestEOBIApplSeqNumsReferenceMode(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{"ApplSeqNums": [981, 982]}`))

	result, err := client.EOBI.ApplSeqNums(context.Background(), "XEUR", 20230804, 52885, 2504978,
		"1691136000000000001", SequenceQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{981, 982}, result.ApplSeqNums)
	assert.Empty(t, result.Packets)
	assert.Equal(t, "/v1/eobi/XEUR/20230804/52885/2504978/1691136000000000001", recorder.last().Path)
}

func TestEOBIApplSeqNumsDetailedMode(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{"Packets": [{"ApplSeqNum": 981}]}`))

	result, err := client.EOBI.ApplSeqNums(context.Background(), "XEUR", 20230804, 52885, 2504978,
		"1691136000000000001", SequenceQuery{Mode: ModeDetailed, TemplateIDFilter: "13100,13101"})
	require.NoError(t, err)
	assert.Empty(t, result.ApplSeqNums)
	assert.Len(t, result.Packets, 1)

	req := recorder.last()
	assert.Equal(t, ModeDetailed, req.Query.Get("mode"))
	assert.Equal(t, "13100,13101", req.Query.Get("templateIdFilter"))
}

func TestEOBIMsgSeqNums(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{"MsgSeqNums": [1, 2, 3]}`))

	result, err := client.EOBI.MsgSeqNums(context.Background(), "XEUR", 20230804, 52885, 2504978,
		"1691136000000000001", 981, SequenceQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, result.MsgSeqNums)
	assert.Equal(t, "/v1/eobi/XEUR/20230804/52885/2504978/1691136000000000001/981", recorder.last().Path)
}

func TestEOBIMessage(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{"MessageHeader": {"TemplateID": 13100}}`))

	msg, err := client.EOBI.Message(context.Background(), "XEUR", 20230804, 52885, 2504978,
		"1691136000000000001", 981, 2)
	require.NoError(t, err)
	assert.NotNil(t, msg)
	assert.Equal(t, "/v1/eobi/XEUR/20230804/52885/2504978/1691136000000000001/981/2", recorder.last().Path)
}
