package a7

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// Result modes accepted by the precalc data endpoint.
const (
	ResultJSON = "json"
	ResultRaw  = "raw"
)

// PrecalcService wraps precalculation job management: scheduled
// server-side computations whose results land in datasets and in per-date
// task result sets.
//
// Job state transitions are pass-through: activating an active job or
// deactivating an inactive one succeeds because the platform treats them
// as no-ops, not because the client checks state first.
type PrecalcService struct {
	transport *Transport
}

// Owners lists the precalc owners visible to the current token.
func (s *PrecalcService) Owners(ctx context.Context) ([]string, error) {
	var out struct {
		Owners []string `json:"Owners"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "precalc"), &out); err != nil {
		return nil, err
	}
	return out.Owners, nil
}

// Jobs lists the precalc jobs of an owner.
func (s *PrecalcService) Jobs(ctx context.Context, owner string) ([]string, error) {
	var out struct {
		Jobs []string `json:"Jobs"`
	}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "precalc", owner), &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

// Definition returns a job's configuration. Note the path: without a
// trailing slash this is the definition, with one it is the date listing
// (see Dates).
func (s *PrecalcService) Definition(ctx context.Context, owner, job string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodGet, "v1", "precalc", owner, job), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a new job from its definition. The platform does not
// update jobs in place; delete and recreate instead.
func (s *PrecalcService) Create(ctx context.Context, owner, job string, definition map[string]interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(definition)
	if err != nil {
		return nil, newValidationError("encoding job definition: %v", err)
	}
	req := newRequest(http.MethodPut, "v1", "precalc", owner, job).
		withBody(bytes.NewReader(body), "application/json")
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a job. Datasets it produced are kept.
func (s *PrecalcService) Delete(ctx context.Context, owner, job string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodDelete, "v1", "precalc", owner, job), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Activate starts scheduling the job.
func (s *PrecalcService) Activate(ctx context.Context, owner, job string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodPatch, "v1", "precalc", owner, job, "activate"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate stops scheduling the job. Deactivating an already-inactive
// job is a remote no-op and succeeds.
func (s *PrecalcService) Deactivate(ctx context.Context, owner, job string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := s.transport.getJSON(ctx, newRequest(http.MethodPatch, "v1", "precalc", owner, job, "deactivate"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dates lists the days on which the job produced tasks, YYYYMMDD.
func (s *PrecalcService) Dates(ctx context.Context, owner, job string) ([]int, error) {
	var out struct {
		Dates []int `json:"Dates"`
	}
	req := newRequest(http.MethodGet, "v1", "precalc", owner, job).withSlash()
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.Dates, nil
}

// Tasks lists the job's tasks on a date.
func (s *PrecalcService) Tasks(ctx context.Context, owner, job string, date int) ([]string, error) {
	var out struct {
		Tasks []string `json:"Tasks"`
	}
	req := newRequest(http.MethodGet, "v1", "precalc", owner, job, itoa(date))
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// Results lists the result sets of a task.
func (s *PrecalcService) Results(ctx context.Context, owner, job string, date int, task string) ([]string, error) {
	var out struct {
		Results []string `json:"Results"`
	}
	req := newRequest(http.MethodGet, "v1", "precalc", owner, job, itoa(date), task)
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Data returns the generated data of one result set. Mode ResultJSON
// (default) decodes the payload, ResultRaw returns the stored bytes as a
// string.
func (s *PrecalcService) Data(ctx context.Context, owner, job string, date int, task, result, mode string) (interface{}, error) {
	if mode == "" {
		mode = ResultJSON
	}
	if mode != ResultJSON && mode != ResultRaw {
		return nil, newValidationError("mode must be %q or %q, got %q", ResultJSON, ResultRaw, mode)
	}

	req := newRequest(http.MethodGet, "v1", "precalc", owner, job, itoa(date), task, result).
		param("mode", mode)

	if mode == ResultRaw {
		return s.transport.text(ctx, req)
	}
	var out interface{}
	if err := s.transport.getJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
