package clientip

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/tagline/pkg/logger"
)

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the client address stored by Middleware.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the client address once per request with GetIP.
func Middleware(next http.Handler) http.Handler {
	return ResolveWith(GetIP)(next)
}

// ResolveWith is Middleware with a custom resolver, usually
// (*Resolver).GetIP. A nil fn falls back to GetIP.
func ResolveWith(fn func(*http.Request) string) func(http.Handler) http.Handler {
	if fn == nil {
		fn = GetIP
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), fn(r))))
		})
	}
}

// LoggerExtractor adds "client_ip" to request scoped log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return logger.ClientIP(ip), true
		}
		return slog.Attr{}, false
	}
}
