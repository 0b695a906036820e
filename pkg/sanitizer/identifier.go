package sanitizer

import "strings"

// HTMLClass reduces a single class token to the characters A-Z, a-z, 0-9,
// '_' and '-'. Percent-encoded octets are removed first so that an encoded
// quote cannot survive as its literal digits.
func HTMLClass(s string) string {
	s = percentOctetRegex.ReplaceAllString(s, "")
	return nonClassCharRegex.ReplaceAllString(s, "")
}

// HTMLClassList sanitizes every whitespace separated token of a class
// attribute and drops tokens that end up empty.
func HTMLClassList(s string) string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if c := HTMLClass(f); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(Deduplicate(out), " ")
}

// Key lowercases s and keeps only a-z, 0-9, '_' and '-'.
func Key(s string) string {
	return nonKeyCharRegex.ReplaceAllString(strings.ToLower(s), "")
}
