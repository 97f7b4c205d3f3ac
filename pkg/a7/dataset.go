package a7

import (
	"context"
	"net/http"
	"strings"
)

// Data formats accepted by the dataset and insights export endpoints.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

func validateFormat(format string) error {
	if format != FormatJSON && format != FormatCSV {
		return newValidationError("format must be %q or %q, got %q", FormatJSON, FormatCSV, format)
	}
	return nil
}

// DatasetService wraps the customer dataset interface: tabular results
// produced by precalc jobs, queried with a small SQL-like parameter
// surface and deleted when no longer needed.
type DatasetService struct {
	transport *Transport
}

// DatasetQuery narrows a dataset read. Select lists columns (empty means
// all), Where and OrderBy are passed through to the server, Limit caps the
// row count, Format selects JSON (default) or CSV.
type DatasetQuery struct {
	Select  []string
	Where   string
	OrderBy string
	Limit   int
	Format  string
}

// Owners lists the dataset owners visible to the current token. Mode is
// MetadataCompact or MetadataFull; empty means compact.
func (s *DatasetService) Owners(ctx context.Context, mode string) ([]string, error) {
	if mode == "" {
		mode = MetadataCompact
	}
	if err := validateMetadataMode(mode); err != nil {
		return nil, err
	}
	var out struct {
		Owners []string `json:"Owners"`
	}
	req := newRequest(http.MethodGet, "v1", "dataset").param("mode", mode)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.Owners, nil
}

// Datasets lists the datasets of an owner.
func (s *DatasetService) Datasets(ctx context.Context, owner string) ([]string, error) {
	var out struct {
		Datasets []string `json:"Datasets"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "dataset", owner), &out); err != nil {
		return nil, err
	}
	return out.Datasets, nil
}

// Metadata returns a dataset's schema and bookkeeping information.
func (s *DatasetService) Metadata(ctx context.Context, owner, dataset string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "dataset", owner, dataset), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Data queries a dataset. JSON format returns the decoded payload, CSV
// format returns the export as a string.
func (s *DatasetService) Data(ctx context.Context, owner, dataset string, query DatasetQuery) (interface{}, error) {
	if query.Format == "" {
		query.Format = FormatJSON
	}
	if err := validateFormat(query.Format); err != nil {
		return nil, err
	}

	req := newRequest(http.MethodGet, "v1", "dataset", owner, dataset, "data").
		param("select", strings.Join(query.Select, ",")).
		param("where", query.Where).
		param("orderBy", query.OrderBy).
		paramInt("limit", query.Limit).
		param("format", query.Format)

	if query.Format == FormatCSV {
		return s.transport.text(ctx, req)
	}
	var out interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a dataset. Precalc jobs that produced it are untouched;
// delete those through the Precalc service.
func (s *DatasetService) Delete(ctx context.Context, owner, dataset string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodDelete, "v1", "dataset", owner, dataset), &out); err != nil {
		return nil, err
	}
	return out, nil
}
