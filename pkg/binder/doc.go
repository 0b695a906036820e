// Package binder decodes HTTP request bodies into handler request values.
//
// JSON decodes strict application/json bodies. Raw captures text bodies of
// the accepted media types (for example text/csv uploads) into a RawBody.
// Both enforce a size limit and report failures with the sentinel errors in
// errors.go so the HTTP layer can map them to status codes.
package binder
