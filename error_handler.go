package apikit

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/apikit/pkg/logger"
	"github.com/dmitrymomot/apikit/pkg/requestid"
	"github.com/dmitrymomot/apikit/schema"
)

// errorInfo is a classified error, ready to render and log.
type errorInfo struct {
	Status int
	Detail ErrorDetail
	Level  slog.Level
}

// classifyError maps an error to a status, an envelope, and a log
// level. Validation failures answer 422 with per-field details, an
// unreadable body answers 400, a catalog HTTPError keeps its own code,
// and anything else answers an opaque 500. Response-encoding failures
// stay 500 even though field errors sit underneath: the fault is the
// server's, and the broken payload must not leak.
func classifyError(err error) errorInfo {
	info := errorInfo{
		Status: http.StatusInternalServerError,
		Detail: ErrorDetail{Code: "internal_error", Message: "An error occurred processing your request"},
	}

	var httpErr HTTPError
	var fieldErrs schema.Errors

	switch {
	case errors.Is(err, ErrResponseEncoding):
		// keep the opaque 500

	case errors.Is(err, ErrMalformedBody):
		info.Status = http.StatusBadRequest
		info.Detail = ErrorDetail{Code: "bad_request", Message: "request body could not be read"}

	case errors.As(err, &fieldErrs):
		info.Status = http.StatusUnprocessableEntity
		info.Detail = ErrorDetail{
			Code:    "unprocessable_entity",
			Message: "request validation failed",
			Details: fieldErrs.ByField(),
		}

	case errors.As(err, &httpErr):
		info.Status = httpErr.Code
		info.Detail = ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	info.Level = slog.LevelWarn
	if info.Status >= http.StatusInternalServerError {
		info.Level = slog.LevelError
	}
	return info
}

// defaultErrorHandler renders classified errors as the JSON envelope and
// logs them with request context.
func defaultErrorHandler(log *slog.Logger) ErrorHandler {
	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		resp := &errorResponse{detail: info.Detail}
		resp.status = info.Status
		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.LogAttrs(ctx, slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

func logError(log *slog.Logger, ctx Context, err error, info errorInfo) {
	req := ctx.Request()
	log.LogAttrs(req.Context(), info.Level, "request error",
		logger.RequestID(requestid.FromContext(req.Context())),
		logger.Error(err),
		slog.Int("status_code", info.Status),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		logger.Component("error_handler"),
	)
}
