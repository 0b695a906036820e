package handler

import (
	"errors"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// ErrNilResponse is reported when a HandlerFunc returns no Response.
var ErrNilResponse = errors.New("handler: nil response")

// HTTPError is a client visible failure: a status code plus a stable
// machine readable key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }

var (
	ErrBadRequest            = HTTPError{http.StatusBadRequest, "bad_request"}
	ErrNotFound              = HTTPError{http.StatusNotFound, "not_found"}
	ErrRequestEntityTooLarge = HTTPError{http.StatusRequestEntityTooLarge, "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{http.StatusUnsupportedMediaType, "unsupported_media_type"}
	ErrInternalServerError   = HTTPError{http.StatusInternalServerError, "internal_server_error"}
	ErrServiceUnavailable    = HTTPError{http.StatusServiceUnavailable, "service_unavailable"}
)

// ValidationError collects messages per request field. It renders as a
// 422 response with the messages in the error details.
type ValidationError map[string][]string

func NewValidationError() ValidationError { return ValidationError{} }

func (e ValidationError) Add(field, message string) { e[field] = append(e[field], message) }

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (e ValidationError) Has(field string) bool { return len(e[field]) > 0 }

// Error lists the first message of each field in field order.
func (e ValidationError) Error() string {
	var b strings.Builder
	for _, field := range slices.Sorted(maps.Keys(e)) {
		msg := e.Get(field)
		if msg == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(field + ": " + msg)
	}
	if b.Len() == 0 {
		return "validation failed"
	}
	return "validation error: " + b.String()
}
