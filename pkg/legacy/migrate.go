package legacy

import "github.com/dmitrymomot/tagline/pkg/taglines"

// BlockName is the name of the legacy standalone block.
const BlockName = "awesome-random-description/random-description"

// BlockMarker is the serialized block comment that identifies legacy content.
const BlockMarker = "<!-- wp:" + BlockName

// Migrate returns site-tagline variation attributes for a legacy block:
// the random-tagline switch turned on and the block's taglines, sanitized.
// Every other legacy attribute is dropped.
func Migrate(attrs map[string]any) map[string]any {
	return map[string]any{
		"isRandomTagline": true,
		"taglines":        taglines.Sanitize(attrs["taglines"]).Strings(),
	}
}
