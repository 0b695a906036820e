// Package tagline renders a "random tagline" for a site: an editor keeps a
// list of candidate taglines with a block, and every page render shows one of
// them, picked at random.
//
// The work happens in three stateless steps, each usable on its own:
//
//   - pkg/attributes (and pkg/taglines) validate the raw attribute map stored
//     with the block into a typed value;
//   - pkg/taglines selects one tagline uniformly at random;
//   - pkg/render emits escaped markup, either as a standalone block or by
//     substituting the text of an existing site tagline element.
//
// Plugin is the composition root that wires those steps to a host's extension
// points.
//
// Basic Usage:
//
//	p := tagline.New(tagline.WithLogger(log))
//
//	// Standalone block, rendered from stored attributes.
//	html := p.RenderBlock(ctx, map[string]any{
//		"taglines": []any{"Fresh every load", "Now with more tagline"},
//	})
//
//	// Variation of the site tagline element.
//	html = p.RenderVariation(ctx, `<p class="wp-block-site-tagline">Just another site</p>`,
//		map[string]any{"isRandomTagline": true, "taglines": []any{"Hello"}},
//	)
//
// Host Integration:
//
//	reg := hooks.NewRegistry()
//	if err := p.Register(reg); err != nil {
//		// handle duplicate registration
//	}
//	page := reg.RenderAll(ctx, blocks)
//
// Error handling:
//
// Neither render operation returns an error. Invalid attributes are dropped,
// an empty tagline list renders nothing (or leaves the markup untouched), and a
// missing wrapper element is a no-op. User text is always escaped.
package tagline
