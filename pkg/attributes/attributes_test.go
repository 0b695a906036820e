package attributes_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tagline/pkg/attributes"
	"github.com/dmitrymomot/tagline/pkg/taglines"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("nil map yields zero attributes", func(t *testing.T) {
		t.Parallel()
		a := attributes.Sanitize(nil)
		assert.Equal(t, "", a.ClassNames())
		assert.Equal(t, "", a.Style())
		assert.Empty(t, a.Taglines)
		assert.False(t, a.IsRandomTagline)
	})

	t.Run("valid fields are kept", func(t *testing.T) {
		t.Parallel()
		a := attributes.Sanitize(map[string]any{
			"className":       "is-style-serif",
			"align":           "wide",
			"textAlign":       "center",
			"taglines":        []any{"One", "Two"},
			"isRandomTagline": true,
		})

		assert.Equal(t, "is-style-serif", a.ClassName)
		assert.Equal(t, "wide", a.Align)
		assert.Equal(t, "center", a.TextAlign)
		assert.Equal(t, taglines.List{"One", "Two"}, a.Taglines)
		assert.True(t, a.IsRandomTagline)
		assert.Equal(t, "is-style-serif alignwide has-text-align-center", a.ClassNames())
	})

	t.Run("invalid enums are dropped", func(t *testing.T) {
		t.Parallel()
		a := attributes.Sanitize(map[string]any{
			"align":     "diagonal",
			"textAlign": "justify\" onmouseover=\"x",
		})
		assert.Empty(t, a.Align)
		assert.Empty(t, a.TextAlign)
	})

	t.Run("enum membership is case sensitive", func(t *testing.T) {
		t.Parallel()
		a := attributes.Sanitize(map[string]any{"align": "LEFT"})
		assert.Empty(t, a.Align)
	})

	t.Run("wrong types are dropped", func(t *testing.T) {
		t.Parallel()
		a := attributes.Sanitize(map[string]any{
			"className":       42,
			"align":           []any{"left"},
			"textAlign":       true,
			"taglines":        "not a list",
			"style":           "padding: 10px",
			"isRandomTagline": "true",
		})
		assert.Equal(t, attributes.Attributes{Taglines: taglines.List{}}, a)
	})

	t.Run("class name is reduced to safe tokens", func(t *testing.T) {
		t.Parallel()
		a := attributes.Sanitize(map[string]any{"className": `custom "><script> other`})
		assert.Equal(t, "custom script other", a.ClassName)
	})

	t.Run("text align justify only applies to text", func(t *testing.T) {
		t.Parallel()
		a := attributes.Sanitize(map[string]any{"align": "justify", "textAlign": "justify"})
		assert.Empty(t, a.Align)
		assert.Equal(t, "justify", a.TextAlign)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		t.Parallel()
		a := attributes.Sanitize(map[string]any{"onclick": "alert(1)", "level": 1})
		assert.Equal(t, "", a.ClassNames())
	})
}

func TestSanitizeFromJSON(t *testing.T) {
	t.Parallel()

	payload := `{
		"className": "hero",
		"align": "full",
		"taglines": ["  A  ", "", "=B", 3],
		"style": {"spacing": {
			"padding": {"top": "var:preset|spacing|40", "bottom": "12xyz", "left": "0"},
			"margin": {"right": "1.5rem", "top": "calc(1px)"}
		}}
	}`

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	a := attributes.Sanitize(raw)
	assert.Equal(t, "hero alignfull", a.ClassNames())
	assert.Equal(t, taglines.List{"A", "B"}, a.Taglines)
	assert.Equal(t,
		"padding-top: var(--wp--preset--spacing--40); padding-left: 0; margin-right: 1.5rem",
		a.Style(),
	)
}
