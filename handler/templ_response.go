package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption tunes how a component is patched into a datastar page.
type TemplOption = datastar.PatchElementOption

// WithTarget patches the element matched by selector instead of the one
// carrying the component's root id.
func WithTarget(selector string) TemplOption { return datastar.WithSelector(selector) }

// WithPatchMode selects outer, inner, append and similar merge modes.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption { return datastar.WithMode(mode) }

// Templ renders c as an HTML document body, or as a single element patch
// event when the request comes from datastar. Options are ignored for plain
// requests.
func Templ(c templ.Component, opts ...TemplOption) Response {
	return componentResponse{c: c, patch: opts}
}

type componentResponse struct {
	c     templ.Component
	patch []TemplOption
}

func (cr componentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return cr.c.Render(r.Context(), w)
	}
	return NewSSE(w, r).PatchElementTempl(cr.c, cr.patch...)
}
