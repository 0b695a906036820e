// Package sanitizer turns untrusted editor input into plain text, CSS class
// tokens and lookup keys.
//
// TextField is the pipeline applied to every tagline: NUL removal, NFC
// composition, markup stripping with bluemonday's strict policy, control
// character removal and whitespace collapsing. StripFormulaPrefix guards
// values that may later be opened in a spreadsheet. HTMLClassList and Key
// reduce input to the characters allowed in class attributes and keys.
//
// Helpers are plain func(string) string values and combine with Chain:
//
//	clean := sanitizer.Chain(sanitizer.TextField, sanitizer.StripFormulaPrefix)
//	clean("  =<b>Hello</b>\n world ") // "Hello world"
//
// Nothing here returns an error. Input that cannot be used becomes "".
package sanitizer
