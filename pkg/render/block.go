package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/tagline/pkg/attributes"
	"github.com/dmitrymomot/tagline/pkg/taglines"
)

const (
	// BlockClass is the base class of the standalone block wrapper.
	BlockClass = "wp-block-awesome-random-description"

	// ContentClass is the class of the element holding the tagline.
	ContentClass = "random-description-content"

	// RegionLabel is the accessible name of the live region.
	RegionLabel = "Site description"
)

// Block returns a component rendering the standalone block with the given
// tagline. An empty tagline renders an empty paragraph.
func Block(attrs attributes.Attributes, tagline string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := BlockClass
		if extra := attrs.ClassNames(); extra != "" {
			class += " " + extra
		}

		var b strings.Builder
		b.WriteString(`<div class="`)
		b.WriteString(templ.EscapeString(class))
		b.WriteByte('"')
		if style := attrs.Style(); style != "" {
			b.WriteString(` style="`)
			b.WriteString(templ.EscapeString(style))
			b.WriteByte('"')
		}
		b.WriteString(` aria-live="polite" role="region" aria-label="`)
		b.WriteString(templ.EscapeString(RegionLabel))
		b.WriteString(`"><div class="`)
		b.WriteString(ContentClass)
		b.WriteString(`"><p>`)
		b.WriteString(templ.EscapeString(tagline))
		b.WriteString(`</p></div></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// RenderBlock selects a tagline from attrs and renders the block to a string.
// A nil selector uses the package default.
func RenderBlock(ctx context.Context, attrs attributes.Attributes, sel *taglines.Selector) string {
	if sel == nil {
		sel = taglines.NewSelector()
	}

	var b strings.Builder
	if err := Block(attrs, sel.Select(attrs.Taglines)).Render(ctx, &b); err != nil {
		return ""
	}
	return b.String()
}
