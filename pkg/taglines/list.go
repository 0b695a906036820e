package taglines

import (
	"strings"

	"github.com/dmitrymomot/tagline/pkg/sanitizer"
)

const (
	// MaxItems is the largest number of taglines kept from any input.
	MaxItems = 100

	// MaxLength is the largest number of runes kept per tagline.
	MaxLength = 500
)

// List is an ordered, sanitized sequence of taglines.
type List []string

// Len returns the number of taglines.
func (l List) Len() int { return len(l) }

// Empty reports whether no tagline is available.
func (l List) Empty() bool { return len(l) == 0 }

// Strings returns a copy of the list as a plain string slice.
func (l List) Strings() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

// cleanTagline is applied to every candidate string.
var cleanTagline = sanitizer.Chain(
	sanitizer.TextField,
	sanitizer.StripFormulaPrefix,
	strings.TrimSpace,
)

// Sanitize builds a List from loosely typed input. Non-slice input yields an
// empty list; non-string elements are skipped; entries that are empty after
// cleaning are dropped and the remaining ones are truncated to MaxLength runes.
// At most MaxItems entries are kept, in input order.
func Sanitize(raw any) List {
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []string:
		items = make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
	case List:
		return Sanitize([]string(v))
	default:
		return List{}
	}

	out := make(List, 0, min(len(items), MaxItems))
	for _, item := range items {
		if len(out) == MaxItems {
			break
		}
		s, ok := item.(string)
		if !ok {
			continue
		}
		if t := Clean(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Clean sanitizes a single tagline and returns "" when nothing usable is left.
func Clean(s string) string {
	s = cleanTagline(s)
	if s == "" {
		return ""
	}
	return strings.TrimRightFunc(sanitizer.Truncate(s, MaxLength), isSpace)
}

func isSpace(r rune) bool {
	return r == ' '
}
