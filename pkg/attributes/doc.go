// Package attributes turns the loosely typed attribute map stored with a
// block into a validated Attributes value.
//
// Every recognised field is type checked and, for enumerations, matched
// against a fixed allow-list. Anything that does not pass is dropped; Sanitize
// never returns an error and never panics, so a malformed block can not break
// page rendering.
//
//	attrs := attributes.Sanitize(map[string]any{
//		"className": "is-style-serif",
//		"align":     "wide",
//		"taglines":  []any{"Fresh every load"},
//		"style": map[string]any{
//			"spacing": map[string]any{
//				"padding": map[string]any{"top": "var:preset|spacing|40"},
//			},
//		},
//	})
//
//	attrs.ClassNames() // "is-style-serif alignwide"
//	attrs.Style()      // "padding-top: var(--wp--preset--spacing--40)"
package attributes
