// Package taglines validates editor supplied tagline lists and picks one of
// them at random for each render.
//
// A List is always rebuilt from raw attribute data; it is never mutated in
// place. Sanitize accepts whatever the attribute decoder produced and returns
// at most MaxItems non-empty, single-line, plain-text entries of at most
// MaxLength runes each:
//
//	list := taglines.Sanitize(attrs["taglines"])
//	text := taglines.Select(list) // "" when list is empty
//
// Selection draws a fresh index for every call, so several blocks rendered on
// the same page pick independently. Tests inject a deterministic Source:
//
//	sel := taglines.NewSelector(taglines.WithSource(taglines.FixedSource(2)))
//	sel.Select(list) // list[2]
//
// The package also ships the import and export formats used by the editor
// tooling: pasted text (ParseText), CSV (ParseCSV, WriteCSV) and YAML list
// files (LoadYAML, WriteYAML). Every import path funnels into Sanitize.
package taglines
