package binder

import "errors"

// Sentinel errors wrapped by JSON and Raw. The HTTP error handler maps
// them to 400, 413 and 415 responses.
var (
	ErrMissingContentType   = errors.New("binder: content type is required")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrBodyTooLarge         = errors.New("binder: body exceeds size limit")
	ErrFailedToParseJSON    = errors.New("binder: malformed JSON body")
	ErrInvalidTarget        = errors.New("binder: unsupported target type")
)
