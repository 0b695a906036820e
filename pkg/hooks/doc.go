// Package hooks is a small in-process implementation of a block host: it
// keeps server-side block renderers and per-block output filters, and renders
// a page's blocks through them.
//
//	reg := hooks.NewRegistry()
//	_ = reg.RegisterBlock("acme/hello", func(ctx context.Context, attrs map[string]any, inner string) string {
//		return "<p>hello</p>"
//	})
//	reg.AddRenderFilter("acme/hello", func(ctx context.Context, out string, b hooks.Block) string {
//		return strings.ToUpper(out)
//	})
//
//	html := reg.Render(ctx, hooks.Block{Name: "acme/hello"})
//
// Blocks without a registered renderer pass their saved inner HTML through
// the filters unchanged, mirroring static blocks.
package hooks
