package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tagline/pkg/binder"
)

type renderRequest struct {
	Content    string         `json:"content"`
	Attributes map[string]any `json:"attributes"`
}

func newJSONRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/variation", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()

		req := newJSONRequest(`{"content":"<p>x</p>","attributes":{"taglines":["A","B"]}}`, "application/json; charset=utf-8")
		var got renderRequest
		require.NoError(t, binder.JSON()(req, &got))

		assert.Equal(t, "<p>x</p>", got.Content, "markup is not altered")
		assert.Equal(t, []any{"A", "B"}, got.Attributes["taglines"])
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"wrong media type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrFailedToParseJSON},
		{"malformed", `{"content":`, "application/json", binder.ErrFailedToParseJSON},
		{"unknown field", `{"other":1}`, "application/json", binder.ErrFailedToParseJSON},
		{"trailing data", `{"content":"a"}{"content":"b"}`, "application/json", binder.ErrFailedToParseJSON},
		{"too large", `{"content":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`, "application/json", binder.ErrBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got renderRequest
			err := binder.JSON()(newJSONRequest(tt.body, tt.contentType), &got)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMediaType(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                        "",
		"application/json":        "application/json",
		"Text/CSV; charset=utf-8": "text/csv",
		"not a media type;;;":     "",
	}
	for in, want := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", in)
		assert.Equal(t, want, binder.MediaType(req), in)
	}
}
