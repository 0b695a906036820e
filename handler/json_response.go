package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// JSONResponse is the envelope of every JSON body: data on success, error
// on failure, and optional meta alongside either.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the error member of a JSONResponse. Details holds per-field
// messages for validation failures.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// JSONOption adjusts a JSON response before it is written.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithJSONMeta sets the meta member.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON responds with v as data and status 200. A JSONResponse value is sent
// as is, and an error is delegated to JSONError.
func JSON(v any, opts ...JSONOption) Response {
	var body JSONResponse
	switch v := v.(type) {
	case error:
		return JSONError(v, opts...)
	case JSONResponse:
		body = v
	default:
		body.Data = v
	}
	return newJSONResponse(http.StatusOK, body, opts)
}

// JSONError responds with the classified form of err. Unknown errors become
// a 500 with a generic message.
func JSONError(err error, opts ...JSONOption) Response {
	info := classifyError(err)
	detail := &ErrorDetail{Code: info.Key, Message: info.Message}

	var invalid ValidationError
	if errors.As(err, &invalid) && len(invalid) > 0 {
		detail.Details = maps.Clone(map[string][]string(invalid))
	}
	return newJSONResponse(info.StatusCode, JSONResponse{Error: detail}, opts)
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func newJSONResponse(status int, body JSONResponse, opts []JSONOption) *jsonResponse {
	r := &jsonResponse{status: status, body: body}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}
