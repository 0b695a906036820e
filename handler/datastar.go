package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Element patch modes used by the preview endpoint.
const (
	PatchOuter = datastar.ElementPatchModeOuter
	PatchInner = datastar.ElementPatchModeInner
)

// signalsParam is the query value datastar uses for signals on GET.
const signalsParam = "datastar"

// IsDataStar reports whether r was issued by the datastar client: it either
// accepts an event stream, carries signals in the "datastar" query value or
// posts a datastar body.
func IsDataStar(r *http.Request) bool {
	switch {
	case strings.Contains(r.Header.Get("Accept"), "text/event-stream"):
		return true
	case strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar"):
		return true
	}
	return r.URL.Query().Has(signalsParam)
}

// NewSSE starts a datastar event stream on w.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

// ReadSignals decodes the client's signals into v. Malformed signals wrap
// ErrBadRequest.
func ReadSignals(r *http.Request, v any) error {
	if err := datastar.ReadSignals(r, v); err != nil {
		return errors.Join(ErrBadRequest, err)
	}
	return nil
}
