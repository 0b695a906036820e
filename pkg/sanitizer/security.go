package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy removes every element and attribute; script and style bodies
// are dropped together with their tags.
var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes all markup and returns the remaining plain text with
// entities decoded. The result must still be escaped before it is embedded
// into HTML.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// StripFormulaPrefix removes a single leading '=', '+', '-' or '@' so that a
// value exported to a spreadsheet is never evaluated as a formula.
func StripFormulaPrefix(s string) string {
	return formulaPrefixRegex.ReplaceAllString(s, "")
}

// TextField reduces arbitrary input to one trimmed line of plain text:
// NUL bytes go first, then the text is composed to NFC, markup is stripped,
// control characters are dropped and whitespace runs become single spaces.
var TextField = Chain(
	func(s string) string { return strings.ReplaceAll(s, "\x00", "") },
	NFC,
	StripTags,
	StripControl,
	CollapseSpace,
)
