package a7

import (
	"io"
	"net/url"
	"strconv"
)

// request describes one HTTP call before it is handed to the transport:
// verb, ordered path segments, query parameters, and an optional body.
// Segments are escaped individually at build time so identifiers with
// special characters (algorithm names in particular) survive the trip.
type request struct {
	method        string
	segments      []string
	trailingSlash bool
	query         url.Values
	body          io.Reader
	contentType   string
}

func newRequest(method string, segments ...string) *request {
	return &request{
		method:   method,
		segments: segments,
		query:    url.Values{},
	}
}

// withSlash marks the path as requiring a trailing slash. The platform
// routes some endpoints by it: /v1/precalc/{owner}/{job} is the job
// definition while /v1/precalc/{owner}/{job}/ lists its dates.
func (r *request) withSlash() *request {
	r.trailingSlash = true
	return r
}

func (r *request) withBody(body io.Reader, contentType string) *request {
	r.body = body
	r.contentType = contentType
	return r
}

// param adds a query parameter, omitting it entirely when the value is
// empty. Absent optionals never travel as empty strings.
func (r *request) param(key, value string) *request {
	if value != "" {
		r.query.Set(key, value)
	}
	return r
}

// paramInt adds an integer query parameter, treating zero as absent.
func (r *request) paramInt(key string, value int) *request {
	if value != 0 {
		r.query.Set(key, strconv.Itoa(value))
	}
	return r
}

// paramBool always sends the flag; the remote defaults differ per endpoint
// so the client states its intent explicitly.
func (r *request) paramBool(key string, value bool) *request {
	r.query.Set(key, strconv.FormatBool(value))
	return r
}

// path renders the escaped path, rooted at the API base.
func (r *request) path() string {
	out := ""
	for _, seg := range r.segments {
		out += "/" + url.PathEscape(seg)
	}
	if r.trailingSlash {
		out += "/"
	}
	return out
}

// itoa keeps the resource builders short: dates, segment IDs and security
// IDs are numeric path segments.
func itoa[T int | int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}
