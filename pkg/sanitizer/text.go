package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Chain returns a transform that runs fns left to right.
func Chain[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

// Truncate cuts s after n runes. It never splits a multi-byte character and
// returns "" for n <= 0.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// CollapseSpace joins the whitespace separated words of s with single
// spaces, which also turns line breaks and tabs into spaces.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripControl drops Unicode control characters except tab, CR and LF.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return r
		case unicode.IsControl(r), r == utf8.RuneError:
			return -1
		}
		return r
	}, s)
}

// NFC composes s into Unicode normalization form C.
func NFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
