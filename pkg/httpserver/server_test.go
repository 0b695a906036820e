package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tagline/pkg/httpserver"
	"github.com/dmitrymomot/tagline/pkg/logger"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return l
}

func start(t *testing.T, srv *httpserver.Server, ctx context.Context, h http.Handler) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()

	select {
	case <-srv.Ready():
	case err := <-done:
		require.FailNow(t, "server exited early", "%v", err)
	case <-time.After(time.Second):
		require.FailNow(t, "server did not start")
	}
	return done
}

func wait(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not finish")
		return nil
	}
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	srv := httpserver.New(
		httpserver.WithListener(listen(t)),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithLogger(logger.New(logger.WithOutput(&logs), logger.WithFormat(logger.FormatText))),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := start(t, srv, ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "tagline")
	}))

	resp, err := http.Get("http://" + srv.Addr().String())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "tagline", string(body))

	cancel()
	require.NoError(t, wait(t, done))
	assert.Contains(t, logs.String(), "http server started")
	assert.Contains(t, logs.String(), "http server stopped")
}

func TestRun_NilHandler(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithListener(listen(t)))
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, srv, ctx, nil)

	resp, err := http.Get("http://" + srv.Addr().String() + "/anything")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	require.NoError(t, wait(t, done))
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(
		httpserver.WithListener(listen(t)),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
	)
	done := start(t, srv, context.Background(), http.NewServeMux())

	require.NoError(t, srv.Shutdown(context.Background()), "first shutdown")
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown is a no-op")
	require.NoError(t, wait(t, done))
}

func TestShutdown_BeforeRun(t *testing.T) {
	t.Parallel()

	assert.NoError(t, httpserver.New().Shutdown(context.Background()))
}

func TestRun_StartError(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:invalid"))
	err := srv.Run(context.Background(), http.NewServeMux())
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.Nil(t, srv.Addr())
}

func TestRun_AlreadyRunning(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithListener(listen(t)))
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, srv, ctx, http.NewServeMux())

	assert.ErrorIs(t, srv.Run(context.Background(), http.NewServeMux()), httpserver.ErrAlreadyRunning)

	cancel()
	require.NoError(t, wait(t, done))
}

func TestRun_ShutdownTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	entered := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithListener(listen(t)),
		httpserver.WithShutdownTimeout(20*time.Millisecond),
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, srv, ctx, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		close(entered)
		<-release
	}))
	defer close(release)

	go func() {
		if resp, err := http.Get("http://" + srv.Addr().String()); err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-entered

	cancel()
	assert.ErrorIs(t, wait(t, done), httpserver.ErrShutdown)
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"empty addr", func() { httpserver.WithAddr("") }},
		{"nil listener", func() { httpserver.WithListener(nil) }},
		{"read timeout", func() { httpserver.New(httpserver.WithReadTimeout(0)) }},
		{"read header timeout", func() { httpserver.New(httpserver.WithReadHeaderTimeout(-time.Second)) }},
		{"write timeout", func() { httpserver.New(httpserver.WithWriteTimeout(-time.Second)) }},
		{"idle timeout", func() { httpserver.New(httpserver.WithIdleTimeout(-time.Second)) }},
		{"shutdown timeout", func() { httpserver.New(httpserver.WithShutdownTimeout(0)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}

	assert.NotPanics(t, func() { httpserver.New(httpserver.WithLogger(nil)) })
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	l := listen(t)
	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:            "127.0.0.1:1",
		ShutdownTimeout: 50 * time.Millisecond,
	}, httpserver.WithListener(l))

	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, srv, ctx, http.NewServeMux())
	assert.Equal(t, l.Addr().String(), srv.Addr().String(), "listener takes precedence over the address")

	cancel()
	require.NoError(t, wait(t, done))
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		checks []httpserver.CheckFunc
		code   int
		body   string
	}{
		{name: "liveness", code: http.StatusOK, body: "ALIVE"},
		{
			name:   "ready",
			checks: []httpserver.CheckFunc{func(context.Context) error { return nil }},
			code:   http.StatusOK,
			body:   "READY",
		},
		{
			name: "not ready",
			checks: []httpserver.CheckFunc{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("db down") },
			},
			code: http.StatusServiceUnavailable,
			body: "NOT_READY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
