package render_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tagline"
	"github.com/dmitrymomot/tagline/handler"
	"github.com/dmitrymomot/tagline/modules/render"
	"github.com/dmitrymomot/tagline/pkg/environment"
	"github.com/dmitrymomot/tagline/pkg/hooks"
	"github.com/dmitrymomot/tagline/pkg/httpserver"
	"github.com/dmitrymomot/tagline/pkg/legacy"
	"github.com/dmitrymomot/tagline/pkg/ratelimiter"
	"github.com/dmitrymomot/tagline/pkg/requestid"
	"github.com/dmitrymomot/tagline/pkg/taglines"
)

type stubScanner struct {
	posts       []legacy.Post
	err         error
	invalidated bool
}

func (s *stubScanner) FindPosts(context.Context) ([]legacy.Post, error) { return s.posts, s.err }
func (s *stubScanner) Invalidate()                                      { s.invalidated = true }

func newRouter(t *testing.T, scanner render.LegacyScanner) http.Handler {
	t.Helper()

	registry := hooks.NewRegistry()
	plugin := tagline.New(tagline.WithSelector(taglines.NewSelector(taglines.WithSource(taglines.FixedSource(0)))))
	require.NoError(t, plugin.Register(registry))

	errorHandler := handler.NewErrorHandler(nil)
	opts := render.RouterOptions{
		Render:      render.NewRenderService(registry, errorHandler, nil),
		Taglines:    render.NewTaglineService(errorHandler, nil),
		Environment: environment.Development,
	}
	if scanner != nil {
		opts.Legacy = render.NewLegacyService(scanner, errorHandler, nil)
		opts.ReadinessChecks = []httpserver.CheckFunc{func(context.Context) error { return errors.New("store down") }}
	}
	return render.Router(opts)
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type jsonBody struct {
	Data  json.RawMessage      `json:"data"`
	Meta  map[string]any       `json:"meta"`
	Error *handler.ErrorDetail `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) jsonBody {
	t.Helper()
	var body jsonBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()
	h := newRouter(t, &stubScanner{})

	rec := do(t, h, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	assert.Equal(t, "development", rec.Header().Get(environment.Header))

	rec = do(t, h, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestid.Header, "trace-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(requestid.Header))
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	bucket, err := ratelimiter.NewBucket(ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	h := render.Router(render.RouterOptions{
		Taglines:  render.NewTaglineService(handler.NewErrorHandler(nil), nil),
		RateLimit: ratelimiter.Middleware(bucket, func(r *http.Request) string { return r.RemoteAddr }, nil),
	})

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/taglines/export?taglines=a", "", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/taglines/export?taglines=a", "", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "", "").Code)
}

func TestRenderService_Block(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/block", "application/json",
		`{"attributes":{"taglines":["Hello <b>World</b>","B"],"className":"intro","textAlign":"center"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `class="wp-block-awesome-random-description intro has-text-align-center"`)
	assert.Contains(t, body, "<p>Hello World</p>")
	assert.NotContains(t, body, "<b>")
}

func TestRenderService_BlockErrors(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{"wrong media type", "text/plain", `{}`, http.StatusUnsupportedMediaType},
		{"malformed json", "application/json", `{"attributes":`, http.StatusBadRequest},
		{"unknown field", "application/json", `{"attrs":{}}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodPost, "/block", tt.contentType, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotNil(t, decode(t, rec).Error)
		})
	}
}

func TestRenderService_Variation(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "active variation replaces tagline",
			body: `{"content":"<p class=\"x wp-block-site-tagline y\">old</p>","attributes":{"isRandomTagline":true,"taglines":["New & Co"]}}`,
			want: `<p class="x wp-block-site-tagline y">New &amp; Co</p>`,
		},
		{
			name: "inactive variation leaves content",
			body: `{"content":"<p class=\"wp-block-site-tagline\">old</p>","attributes":{"isRandomTagline":false,"taglines":["New"]}}`,
			want: `<p class="wp-block-site-tagline">old</p>`,
		},
		{
			name: "missing wrapper leaves content",
			body: `{"content":"<p class=\"other\">old</p>","attributes":{"isRandomTagline":true,"taglines":["New"]}}`,
			want: `<p class="other">old</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodPost, "/variation", "application/json", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestRenderService_Page(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/page", "application/json", `{"blocks":[
		{"name":"core/paragraph","innerHTML":"<p>Intro</p>"},
		{"name":"awesome-random-description/random-description","attrs":{"taglines":["Only"]}},
		{"name":"core/site-tagline","attrs":{"isRandomTagline":true,"taglines":["Swapped"]},"innerHTML":"<p class=\"wp-block-site-tagline\">Static</p>"}
	]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<p>Intro</p>"))
	assert.Contains(t, body, "<p>Only</p>")
	assert.True(t, strings.HasSuffix(body, `<p class="wp-block-site-tagline">Swapped</p>`))
}

func TestRenderService_Preview(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	t.Run("regular request", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/preview?taglines=First&taglines=Second", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, `<div id="tagline-preview">`))
		assert.Contains(t, body, "<p>First</p>")
	})

	t.Run("datastar request", func(t *testing.T) {
		t.Parallel()
		signals := url.QueryEscape(`{"taglines":["Signal <i>tag</i>"]}`)
		req := httptest.NewRequest(http.MethodGet, "/preview?datastar="+signals, nil)
		req.Header.Set("Accept", "text/event-stream")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#tagline-preview")
		assert.Contains(t, body, "<p>Signal tag</p>")
	})
}

func TestTaglineService_Import(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	t.Run("json text", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPost, "/taglines/import", "application/json", `{"text":"One\n\n=Two\n  Three  "}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		var list []string
		require.NoError(t, json.Unmarshal(body.Data, &list))
		assert.Equal(t, []string{"One", "Two", "Three"}, list)
		assert.Equal(t, float64(3), body.Meta["count"])
	})

	t.Run("csv upload", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPost, "/taglines/import", "text/csv", "\"Hello, world\",ignored\nPlain\n")

		require.Equal(t, http.StatusOK, rec.Code)
		var list []string
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
		assert.Equal(t, []string{"Hello, world", "Plain"}, list)
	})

	t.Run("oversized text", func(t *testing.T) {
		t.Parallel()
		text := strings.Repeat("a", taglines.MaxTextImportSize+1)
		rec := do(t, h, http.MethodPost, "/taglines/import", "application/json", `{"text":"`+text+`"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"input is too large"}, body.Error.Details["text"])
	})

	t.Run("oversized csv", func(t *testing.T) {
		t.Parallel()
		csv := strings.Repeat("tagline\n", taglines.MaxCSVImportSize/8+1)
		rec := do(t, h, http.MethodPost, "/taglines/import", "text/csv", csv)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"input is too large"}, decode(t, rec).Error.Details["csv"])
	})

	t.Run("nothing usable", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodPost, "/taglines/import", "application/json", `{"text":"  \n<br>\n"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"no valid taglines found"}, decode(t, rec).Error.Details["text"])
	})
}

func TestTaglineService_Export(t *testing.T) {
	t.Parallel()
	h := newRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/taglines/export?taglines=Say+%22hi%22&taglines=%3Db&taglines=", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), render.ExportFilename)
	assert.Equal(t, "\"Say \"\"hi\"\"\"\n\"b\"\n", rec.Body.String())
}

func TestLegacyService(t *testing.T) {
	t.Parallel()

	t.Run("lists posts", func(t *testing.T) {
		t.Parallel()
		modified := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		scanner := &stubScanner{posts: []legacy.Post{{ID: 7, Title: "Home", Type: "page", Status: "publish", Modified: modified}}}
		h := newRouter(t, scanner)

		rec := do(t, h, http.MethodGet, "/legacy?refresh=1", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, scanner.invalidated)

		body := decode(t, rec)
		var posts []legacy.Post
		require.NoError(t, json.Unmarshal(body.Data, &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, int64(7), posts[0].ID)
		assert.Equal(t, modified, posts[0].Modified)
		assert.Equal(t, float64(1), body.Meta["count"])
	})

	t.Run("scan failure", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, &stubScanner{err: errors.New("db locked")})

		rec := do(t, h, http.MethodGet, "/legacy", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db locked")
	})

	t.Run("migrate attributes", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, &stubScanner{})

		rec := do(t, h, http.MethodPost, "/legacy/migrate", "application/json", `{"attributes":{"taglines":["A","<p></p>"],"align":"wide"}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var block struct {
			Name  string         `json:"name"`
			Attrs map[string]any `json:"attrs"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &block))
		assert.Equal(t, tagline.SiteTaglineBlockName, block.Name)
		assert.Equal(t, map[string]any{"isRandomTagline": true, "taglines": []any{"A"}}, block.Attrs)
	})

	t.Run("not mounted without scanner", func(t *testing.T) {
		t.Parallel()
		rec := do(t, newRouter(t, nil), http.MethodGet, "/legacy", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decode(t, rec).Error.Code)
	})
}
