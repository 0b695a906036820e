// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap converts it into an http.HandlerFunc: binders populate the
// request, the response renders itself, and any failure on the way goes to
// the ErrorHandler.
//
//	type blockRequest struct {
//		Attributes map[string]any `json:"attributes"`
//	}
//
//	r.Post("/block", handler.Wrap(
//		func(ctx handler.Context, req blockRequest) handler.Response {
//			return handler.HTML(plugin.RenderBlock(ctx, req.Attributes))
//		},
//		handler.WithBinder[blockRequest](binder.JSON()),
//		handler.WithErrorHandler[blockRequest](errorHandler),
//	))
//
// Templ renders a templ component as plain HTML, or as a datastar
// patch-elements event when the request comes from datastar.
package handler
