package a7

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetOwners(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{"Owners": ["acme"]}`))

	owners, err := client.Dataset.Owners(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"acme"}, owners)

	req := recorder.last()
	assert.Equal(t, "/v1/dataset", req.Path)
	assert.Equal(t, MetadataCompact, req.Query.Get("mode"))
}

func TestDatasetListingAndMetadata(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{
		"Datasets": ["daily_vwap"],
		"Columns": [{"name": "price", "type": "double"}]
	}`))
	ctx := context.Background()

	datasets, err := client.Dataset.Datasets(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"daily_vwap"}, datasets)
	assert.Equal(t, "/v1/dataset/acme", recorder.last().Path)

	meta, err := client.Dataset.Metadata(ctx, "acme", "daily_vwap")
	require.NoError(t, err)
	assert.Contains(t, meta, "Columns")
	assert.Equal(t, "/v1/dataset/acme/daily_vwap", recorder.last().Path)
}

func TestDatasetDataJSON(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`[{"date": 20230804, "vwap": 101.5}]`))

	rows, err := client.Dataset.Data(context.Background(), "acme", "daily_vwap", DatasetQuery{
		Select:  []string{"date", "vwap"},
		Where:   "date >= 20230801",
		OrderBy: "date",
		Limit:   100,
	})
	require.NoError(t, err)
	assert.IsType(t, []interface{}{}, rows)

	req := recorder.last()
	assert.Equal(t, "/v1/dataset/acme/daily_vwap/data", req.Path)
	assert.Equal(t, "date,vwap", req.Query.Get("select"))
	assert.Equal(t, "date >= 20230801", req.Query.Get("where"))
	assert.Equal(t, "date", req.Query.Get("orderBy"))
	assert.Equal(t, "100", req.Query.Get("limit"))
	assert.Equal(t, FormatJSON, req.Query.Get("format"))
}

func TestDatasetDataCSV(t *testing.T) {
	const csv = "date,vwap\n20230804,101.5\n"
	client, recorder := newTestServer(t, respondStatus(200, csv))

	got, err := client.Dataset.Data(context.Background(), "acme", "daily_vwap", DatasetQuery{Format: FormatCSV})
	require.NoError(t, err)
	assert.Equal(t, csv, got)
	assert.Equal(t, FormatCSV, recorder.last().Query.Get("format"))
}

func TestDatasetDataRejectsUnknownFormat(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{}`))

	_, err := client.Dataset.Data(context.Background(), "acme", "daily_vwap", DatasetQuery{Format: "parquet"})
	assert.True(t, IsValidation(err))
	assert.Zero(t, recorder.count())
}

func TestDatasetDelete(t *testing.T) {
	client, recorder := newTestServer(t, respondJSON(`{"deleted": true}`))

	_, err := client.Dataset.Delete(context.Background(), "acme", "daily_vwap")
	require.NoError(t, err)

	req := recorder.last()
	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, "/v1/dataset/acme/daily_vwap", req.Path)
}
