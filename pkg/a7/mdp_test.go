package a7

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMDPNavigation(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{
		"Exchanges": ["XCME"],
		"Dates": [20230804],
		"Assets": ["ES"],
		"SecurityIDs": [12345]
	}`))
	ctx := context.Background()

	exchanges, err := client.MDP.Exchanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"XCME"}, exchanges)
	assert.Equal(t, "/v1/mdp", recorder.last().Path)

	dates, err := client.MDP.Dates(ctx, "XCME")
	require.NoError(t, err)
	assert.Equal(t, []int{20230804}, dates)
	assert.Equal(t, "/v1/mdp/XCME", recorder.last().Path)

	assets, err := client.MDP.Assets(ctx, "XCME", 20230804)
	require.NoError(t, err)
	assert.Equal(t, []string{"ES"}, assets)
	assert.Equal(t, "/v1/mdp/XCME/20230804", recorder.last().Path)

	securities, err := client.MDP.Securities(ctx, "XCME", 20230804, "ES")
	require.NoError(t, err)
	assert.Equal(t, []int64{12345}, securities)
	assert.Equal(t, "/v1/mdp/XCME/20230804/ES", recorder.last().Path)
}

func TestMDPSendingTimes(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{"SendingTimes": ["1691136000000000002"]}`))

	result, err := client.MDP.SendingTimes(context.Background(), "XCME", 20230804, "ES", 12345,
		SendingTimesQuery{Limit: 10, TemplateID: 46})
	require.NoError(t, err)
	assert.Equal(t, []string{"1691136000000000002"}, result.SendingTimes)
	assert.Empty(t, result.Packets)

	req := recorder.last()
	assert.Equal(t, "/v1/mdp/XCME/20230804/ES/12345", req.Path)
	assert.Equal(t, ModeReference, req.Query.Get("mode"))
	assert.Equal(t, "10", req.Query.Get("limit"))
	assert.Equal(t, "46", req.Query.Get("templateID"))
	assert.NotContains(t, req.Query, "msgSeqNum")
}

func TestMDPSendingTimesRejectsBadModeLocally(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{}`))

	_, err := client.MDP.SendingTimes(context.Background(), "XCME", 20230804, "ES", 12345,
		SendingTimesQuery{Mode: "full"})
	assert.True(t, IsValidation(err))
	assert.Zero(t, recorder.count())
}

func TestMDPMessage(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{"Messages": [{"MsgSeqNum": 7}]}`))

	msg, err := client.MDP.Message(context.Background(), "XCME", 20230804, "ES", 12345, "1691136000000000002")
	require.NoError(t, err)
	assert.NotNil(t, msg)
	assert.Equal(t, "/v1/mdp/XCME/20230804/ES/12345/1691136000000000002", recorder.last().Path)
}
