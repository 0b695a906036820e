package sanitizer

import "regexp"

// Pre-compiled regular expressions shared by the helpers.
var (
	percentOctetRegex  = regexp.MustCompile(`%[a-fA-F0-9][a-fA-F0-9]`)
	nonClassCharRegex  = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	nonKeyCharRegex    = regexp.MustCompile(`[^a-z0-9_-]`)
	formulaPrefixRegex = regexp.MustCompile(`^[=+\-@]`)
)
