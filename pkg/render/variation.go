package render

import (
	"bytes"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/tagline/pkg/taglines"
)

// WrapperClass marks the site tagline element whose content is replaced.
const WrapperClass = "wp-block-site-tagline"

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Variation replaces the content of the site tagline element in existing with
// a randomly selected tagline. existing is returned unchanged when active is
// false, list is empty or no suitable wrapper element is present.
func Variation(existing string, active bool, list taglines.List, sel *taglines.Selector) string {
	if !active || list.Empty() {
		return existing
	}
	if sel == nil {
		sel = taglines.NewSelector()
	}

	tagline := sel.Select(list)
	if tagline == "" {
		return existing
	}

	out, ok := ReplaceWrapperContent(existing, templ.EscapeString(tagline))
	if !ok {
		return existing
	}
	return out
}

// ReplaceWrapperContent substitutes escaped for the content of the first
// non-void element carrying WrapperClass. escaped is inserted as is. The
// boolean reports whether a complete wrapper element was found.
func ReplaceWrapperContent(src, escaped string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(src))

	var (
		offset     int
		innerStart = -1
		wrapperTag string
		depth      int
	)

	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			// io.EOF or a tokenizer failure; either way no complete wrapper.
			return src, false

		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if innerStart >= 0 {
				if string(name) == wrapperTag {
					depth++
				}
				continue
			}
			if !hasAttr || voidElements[string(name)] {
				continue
			}
			if hasWrapperClass(z) {
				wrapperTag = string(name)
				innerStart = offset
				depth = 1
			}

		case html.EndTagToken:
			if innerStart < 0 {
				continue
			}
			name, _ := z.TagName()
			if string(name) != wrapperTag {
				continue
			}
			depth--
			if depth == 0 {
				return src[:innerStart] + escaped + src[start:], true
			}
		}
	}
}

func hasWrapperClass(z *html.Tokenizer) bool {
	for {
		key, val, more := z.TagAttr()
		if bytes.Equal(key, []byte("class")) && slices.Contains(strings.Fields(string(val)), WrapperClass) {
			return true
		}
		if !more {
			return false
		}
	}
}
