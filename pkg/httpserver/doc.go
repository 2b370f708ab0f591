// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable timeouts, health-check handlers and
// structured logging via slog.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal is
// received, then shuts the server down with a configurable deadline. Options
// with invalid arguments panic at construction so misconfiguration is caught
// at startup. Failures are wrapped with the ErrStart and ErrShutdown
// sentinels for errors.Is checks.
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStartHook(func(l *slog.Logger) { l.Info("ready") }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server exited", logger.Error(err))
//	}
//
// Config carries the usual HTTP_* environment variables (HTTP_ADDR,
// HTTP_READ_TIMEOUT, ...) so servers can be configured entirely through the
// config package.
package httpserver
