package handler

import "net/http"

// HandlerFunc serves a request already decoded into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response writes itself to w.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes r into v, a pointer to the request value.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for a failed bind or render.
type ErrorHandler func(ctx Context, err error)

// WrapOption configures Wrap.
type WrapOption[R any] func(*route[R])

type route[R any] struct {
	h      HandlerFunc[R]
	bind   Bind
	onFail ErrorHandler
}

// WithBinder decodes the request with b before the handler runs. Without a
// binder the handler receives the zero R.
func WithBinder[R any](b Bind) WrapOption[R] {
	return func(rt *route[R]) { rt.bind = b }
}

// WithErrorHandler replaces the plain text fallback error handler.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(rt *route[R]) {
		if h != nil {
			rt.onFail = h
		}
	}
}

// Wrap adapts h to net/http.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	rt := &route[R]{h: h, onFail: plainError}
	for _, opt := range opts {
		opt(rt)
	}
	return rt.serve
}

func (rt *route[R]) serve(w http.ResponseWriter, r *http.Request) {
	ctx := NewContext(w, r)

	var req R
	if rt.bind != nil {
		if err := rt.bind(r, &req); err != nil {
			rt.onFail(ctx, err)
			return
		}
	}

	resp := rt.h(ctx, req)
	if resp == nil {
		rt.onFail(ctx, ErrNilResponse)
		return
	}
	if err := resp.Render(w, r); err != nil {
		rt.onFail(ctx, err)
	}
}

func plainError(ctx Context, err error) {
	info := classifyError(err)
	http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
}
