package attributes

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/tagline/pkg/sanitizer"
)

// Sides in emission order.
var sides = []string{"top", "right", "bottom", "left"}

var (
	presetRegex = regexp.MustCompile(`^var:preset\|spacing\|([A-Za-z0-9_-]+)$`)
	lengthRegex = regexp.MustCompile(`(?i)^\d+(?:\.\d+)?(?:px|em|rem|%|vh|vw)$`)
)

// Box holds one sanitized CSS value per side; "" means unset.
type Box struct {
	Top    string
	Right  string
	Bottom string
	Left   string
}

func (b Box) get(side string) string {
	switch side {
	case "top":
		return b.Top
	case "right":
		return b.Right
	case "bottom":
		return b.Bottom
	case "left":
		return b.Left
	}
	return ""
}

func (b *Box) set(side, value string) {
	switch side {
	case "top":
		b.Top = value
	case "right":
		b.Right = value
	case "bottom":
		b.Bottom = value
	case "left":
		b.Left = value
	}
}

// Spacing is the validated style.spacing attribute.
type Spacing struct {
	Padding Box
	Margin  Box
}

// Style renders the declarations as "padding-top: 1rem; margin-left: 0".
// Padding comes before margin; sides follow top, right, bottom, left.
func (s Spacing) Style() string {
	decls := make([]string, 0, 8)
	for _, prop := range []struct {
		name string
		box  Box
	}{
		{"padding", s.Padding},
		{"margin", s.Margin},
	} {
		for _, side := range sides {
			if v := prop.box.get(side); v != "" {
				decls = append(decls, fmt.Sprintf("%s-%s: %s", prop.name, side, v))
			}
		}
	}
	return strings.Join(decls, "; ")
}

// SanitizeSpacingValue accepts a spacing preset reference, a non-negative
// length with an allowed unit, or the literal "0". Any other value is
// rejected.
func SanitizeSpacingValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}

	if m := presetRegex.FindStringSubmatch(s); m != nil {
		token := sanitizer.Key(m[1])
		if token == "" {
			return "", false
		}
		return "var(--wp--preset--spacing--" + token + ")", true
	}

	if lengthRegex.MatchString(s) {
		return s, true
	}

	if s == "0" {
		return "0", true
	}

	return "", false
}

// sanitizeSpacing extracts style.spacing.{padding,margin} from a raw style value.
func sanitizeSpacing(raw any) Spacing {
	var sp Spacing

	style, ok := raw.(map[string]any)
	if !ok {
		return sp
	}
	spacing, ok := style["spacing"].(map[string]any)
	if !ok {
		return sp
	}

	sp.Padding = sanitizeBox(spacing["padding"])
	sp.Margin = sanitizeBox(spacing["margin"])
	return sp
}

func sanitizeBox(raw any) Box {
	var b Box

	values, ok := raw.(map[string]any)
	if !ok {
		return b
	}

	for _, side := range sides {
		if v, ok := SanitizeSpacingValue(values[side]); ok {
			b.set(side, v)
		}
	}
	return b
}
