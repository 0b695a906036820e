package render

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/tagline/handler"
	"github.com/dmitrymomot/tagline/pkg/clientip"
	"github.com/dmitrymomot/tagline/pkg/environment"
	"github.com/dmitrymomot/tagline/pkg/httpserver"
	"github.com/dmitrymomot/tagline/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services are mounted.
// Each service is optional.
type RouterOptions struct {
	Render   Mountable
	Taglines Mountable
	Legacy   Mountable

	Environment environment.Environment
	Logger      *slog.Logger

	// ReadinessChecks back GET /health/ready.
	ReadinessChecks []httpserver.CheckFunc

	// RateLimit wraps every mounted service. Health routes are never limited.
	RateLimit func(http.Handler) http.Handler

	// ClientIP resolves the address stored in the request context.
	// Defaults to clientip.GetIP.
	ClientIP func(*http.Request) string
}

// Router builds the daemon's HTTP router.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.ResolveWith(opts.ClientIP),
		environment.Middleware(opts.Environment),
		middleware.Recoverer,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})

	r.Get("/health", httpserver.HealthCheckHandler(opts.Logger))

	r.Get("/health/ready", httpserver.HealthCheckHandler(opts.Logger, opts.ReadinessChecks...))

	r.Group(func(r chi.Router) {
		if opts.RateLimit != nil {
			r.Use(opts.RateLimit)
		}
		if opts.Render != nil {
			r.Mount("/", opts.Render.Handle())
		}
		if opts.Taglines != nil {
			r.Mount("/taglines", opts.Taglines.Handle())
		}
		if opts.Legacy != nil {
			r.Mount("/legacy", opts.Legacy.Handle())
		}
	})

	return r
}
