package binder

import (
	"fmt"
	"net/http"
	"slices"
)

// RawBody holds an unparsed request body.
type RawBody struct {
	ContentType string
	Data        []byte
}

// RawBinder is implemented by request values that embed or expose a RawBody.
type RawBinder interface {
	SetRawBody(RawBody)
}

// SetRawBody lets RawBody be embedded in request structs.
func (b *RawBody) SetRawBody(raw RawBody) {
	*b = raw
}

// Raw creates a binder that reads the body as-is when its media type is one
// of mediaTypes. Bodies longer than maxSize are rejected with ErrBodyTooLarge.
func Raw(maxSize int64, mediaTypes ...string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		target, ok := v.(RawBinder)
		if !ok {
			return fmt.Errorf("%w: %T does not implement RawBinder", ErrInvalidTarget, v)
		}

		mt := MediaType(r)
		if mt == "" {
			return fmt.Errorf("%w: expected one of %v", ErrMissingContentType, mediaTypes)
		}
		if !slices.Contains(mediaTypes, mt) {
			return fmt.Errorf("%w: got %q", ErrUnsupportedMediaType, mt)
		}

		data, err := readLimited(r.Body, maxSize)
		if err != nil {
			return err
		}
		target.SetRawBody(RawBody{ContentType: mt, Data: data})
		return nil
	}
}

