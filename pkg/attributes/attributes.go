package attributes

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/tagline/pkg/sanitizer"
	"github.com/dmitrymomot/tagline/pkg/taglines"
)

// Attribute names as stored with the block.
const (
	KeyClassName       = "className"
	KeyAlign           = "align"
	KeyTextAlign       = "textAlign"
	KeyTaglines        = "taglines"
	KeyStyle           = "style"
	KeyIsRandomTagline = "isRandomTagline"
)

var (
	alignments     = []string{"left", "center", "right", "wide", "full"}
	textAlignments = []string{"left", "center", "right", "justify"}
)

// Attributes is the validated subset of block attributes needed to render.
// Zero values mean "absent".
type Attributes struct {
	ClassName       string
	Align           string
	TextAlign       string
	Spacing         Spacing
	Taglines        taglines.List
	IsRandomTagline bool
}

// Sanitize validates raw block attributes. Unknown or invalid fields are dropped.
func Sanitize(raw map[string]any) Attributes {
	var a Attributes
	if raw == nil {
		a.Taglines = taglines.List{}
		return a
	}

	if s, ok := raw[KeyClassName].(string); ok {
		a.ClassName = sanitizer.HTMLClassList(s)
	}
	a.Align = enum(raw[KeyAlign], alignments)
	a.TextAlign = enum(raw[KeyTextAlign], textAlignments)
	a.Taglines = taglines.Sanitize(raw[KeyTaglines])
	a.Spacing = sanitizeSpacing(raw[KeyStyle])
	a.IsRandomTagline, _ = raw[KeyIsRandomTagline].(bool)

	return a
}

// enum returns v when it is a string contained in allowed, otherwise "".
func enum(v any, allowed []string) string {
	s, ok := v.(string)
	if !ok || !slices.Contains(allowed, s) {
		return ""
	}
	return sanitizer.Key(s)
}

// ClassNames returns the extra classes for the wrapper element: the custom
// class name, the alignment class and the text alignment class.
func (a Attributes) ClassNames() string {
	classes := make([]string, 0, 3)
	if a.ClassName != "" {
		classes = append(classes, a.ClassName)
	}
	if a.Align != "" {
		classes = append(classes, "align"+a.Align)
	}
	if a.TextAlign != "" {
		classes = append(classes, "has-text-align-"+a.TextAlign)
	}
	return strings.Join(classes, " ")
}

// Style returns the inline style built from whitelisted spacing declarations.
func (a Attributes) Style() string {
	return a.Spacing.Style()
}
