// Package requestid attaches a correlation identifier to every HTTP request.
//
// Middleware reuses a well-formed "X-Request-ID" header supplied by the
// client or generates a time ordered UUIDv7, stores it in the request context and echoes
// it back in the response. FromContext reads it in handlers, and
// LoggerExtractor adds it to every log record written with that context.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
