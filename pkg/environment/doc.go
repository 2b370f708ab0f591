// Package environment carries the application runtime environment
// (development, staging, production) as a typed value through configuration,
// context.Context, HTTP middleware and structured logs.
//
// Parse converts raw configuration input, accepting short forms like "dev"
// and "prod", and falls back to Development for anything unrecognized.
// The predicates IsDevelopment, IsStaging and IsProduction make branching
// explicit:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // stricter settings
//	}
//
// Middleware stamps the environment onto every request context, and
// LoggerExtractor exposes it to slog-based loggers as an "env" attribute.
//
// All helpers are allocation-free and never return errors; a missing context
// value yields the empty Environment.
package environment
