package httpserver

import (
	"log/slog"
	"net"
	"time"
)

type options struct {
	addr              string
	listener          net.Listener
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
}

// Option configures a Server. Invalid values panic so that misconfiguration
// fails at startup.
type Option func(*options)

// WithAddr sets the TCP address to listen on.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty address")
	}
	return func(o *options) { o.addr = addr }
}

// WithListener serves on an already bound listener instead of WithAddr.
// Run closes it when the server stops.
func WithListener(l net.Listener) Option {
	if l == nil {
		panic("httpserver: nil listener")
	}
	return func(o *options) { o.listener = l }
}

// WithReadTimeout bounds reading a whole request, body included.
func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { o.readTimeout = positive("read timeout", d) }
}

// WithReadHeaderTimeout bounds reading request headers.
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(o *options) { o.readHeaderTimeout = positive("read header timeout", d) }
}

// WithWriteTimeout bounds writing a response.
func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { o.writeTimeout = positive("write timeout", d) }
}

// WithIdleTimeout bounds keep-alive idle time.
func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) { o.idleTimeout = positive("idle timeout", d) }
}

// WithShutdownTimeout bounds draining in-flight requests on shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) { o.shutdownTimeout = positive("shutdown timeout", d) }
}

// WithLogger sets the server logger. Nil keeps the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func positive(name string, d time.Duration) time.Duration {
	if d <= 0 {
		panic("httpserver: " + name + " must be positive")
	}
	return d
}
