// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The single factory New creates a *slog.Logger configured by Option
// functions:
//
//   - Select an output format: json, text, or dev (colorized, for terminals)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that pull attributes from the
//     context (for example a request id) every time a record is handled
//
// # Architecture
//
// New picks a concrete handler by format - slog.NewJSONHandler,
// slog.NewTextHandler, or a tint handler for dev output - then wraps it in a
// decorator that runs the registered ContextExtractor callbacks before
// delegating. Dev format disables color automatically when the output is not
// a terminal.
//
// Helper constructors such as Error, Component and RequestID return
// commonly-used slog.Attr values to keep attribute naming consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("users-api"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "request handled",
//	    logger.Route("/users/{id}"),
//	    logger.Duration(time.Since(start)),
//	)
//
// The Error helper produces an attribute only when the error is non-nil, so
// it can be passed unconditionally:
//
//	log.Info("operation finished", logger.Error(err))
package logger
