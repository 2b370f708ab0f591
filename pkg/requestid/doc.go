// Package requestid propagates a per-request correlation identifier through
// HTTP headers, context.Context and structured logs.
//
// Middleware attaches an ID to every request: a valid client-supplied
// "X-Request-ID" header is reused, anything missing or malformed is replaced
// with a generated UUID. The ID is stored in the request context and echoed
// back in the response header so clients can quote it in bug reports.
//
//	mux := chi.NewRouter()
//	mux.Use(requestid.Middleware)
//
// Handlers read the ID with FromContext (or FromRequest when only the
// *http.Request is at hand), and LoggerExtractor plugs into the logger
// package so every log record within the request carries a "request_id"
// attribute.
//
// The package never returns errors; invalid client IDs are silently replaced.
package requestid
