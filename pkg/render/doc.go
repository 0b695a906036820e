// Package render produces the HTML for a random tagline.
//
// Block renders the standalone block: a live region wrapper carrying the
// sanitized classes and inline spacing style, with the escaped tagline inside.
//
// Variation rewrites markup that was already produced for a site tagline
// element. The fragment is tokenized with golang.org/x/net/html, the first
// element whose class list contains WrapperClass is located, and only the
// content between its start and end tags is replaced. Both tags and every
// byte outside the element are copied verbatim. When the element can not be
// found the input is returned unchanged.
//
// User supplied text is always escaped before it reaches the output.
package render
