package apikit

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/apikit/pkg/requestid"
	"github.com/dmitrymomot/apikit/schema"
)

// App routes requests through the decode, validate, handle, encode
// pipeline. It is an http.Handler, so it plugs into any server.
//
// Example:
//
//	app := apikit.New(apikit.WithLogger(log))
//	app.Handle(apikit.Route{
//		Method:  http.MethodGet,
//		Pattern: "/users/{user_id}",
//		Request: getUserRequest,
//		Handler: getUser,
//	})
//	http.ListenAndServe(":8080", app)
type App struct {
	log          *slog.Logger
	router       chi.Router
	errorHandler ErrorHandler
	middleware   []func(http.Handler) http.Handler
	routes       []Route
}

// AppOption configures an App at construction.
type AppOption func(*App)

// WithLogger sets the logger the app and its default error handler use.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) {
		if log != nil {
			app.log = log
		}
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) AppOption {
	return func(app *App) {
		if h != nil {
			app.errorHandler = h
		}
	}
}

// WithMiddleware appends router middleware, applied to every route in
// registration order after request id assignment and panic recovery.
func WithMiddleware(mw ...func(http.Handler) http.Handler) AppOption {
	return func(app *App) {
		app.middleware = append(app.middleware, mw...)
	}
}

// New creates an App. Every app assigns request ids and recovers from
// handler panics before user middleware runs.
func New(opts ...AppOption) *App {
	app := &App{log: slog.Default()}
	for _, opt := range opts {
		opt(app)
	}
	if app.errorHandler == nil {
		app.errorHandler = defaultErrorHandler(app.log)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(app.middleware...)
	app.router = r

	return app
}

// Handle registers a route. It panics on a misdeclared route, so
// registration failures surface at startup.
func (app *App) Handle(route Route) {
	route.validate()
	app.routes = append(app.routes, route)
	app.router.Method(route.Method, route.Pattern, app.dispatch(route))
}

// Register registers several routes at once.
func (app *App) Register(routes ...Route) {
	for _, route := range routes {
		app.Handle(route)
	}
}

// Mount registers routes under a shared path prefix. Route patterns stay
// relative to the prefix, so a route "/{item_id}" mounted at "/items"
// serves "/items/{item_id}".
func (app *App) Mount(prefix string, routes ...Route) {
	sub := chi.NewRouter()
	for _, route := range routes {
		route.validate()
		app.routes = append(app.routes, route)
		sub.Method(route.Method, route.Pattern, app.dispatch(route))
	}
	app.router.Mount(prefix, sub)
}

// Routes returns the registered routes in registration order.
func (app *App) Routes() []Route {
	out := make([]Route, len(app.routes))
	copy(out, app.routes)
	return out
}

func (app *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.router.ServeHTTP(w, r)
}

// dispatch runs one request through the pipeline: assemble raw slots,
// decode and validate against the route's records, call the handler,
// then project and render the response. Any error along the way goes to
// the error handler and the handler never sees invalid input.
func (app *App) dispatch(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		raw, err := buildRawInput(r, route.Request, route.Patch)
		if err != nil {
			app.errorHandler(ctx, err)
			return
		}

		var in *schema.Instance
		if route.Request != nil {
			in, err = route.Request.Decode(raw)
			if err != nil {
				app.errorHandler(ctx, err)
				return
			}
		}

		var resp Response
		var handlerErr error
		if route.PatchHandler != nil {
			patch, err := route.Patch.DecodePatch(raw)
			if err != nil {
				app.errorHandler(ctx, err)
				return
			}
			resp, handlerErr = route.PatchHandler(ctx, in, patch)
		} else {
			resp, handlerErr = route.Handler(ctx, in)
		}
		if handlerErr != nil {
			app.errorHandler(ctx, handlerErr)
			return
		}
		if resp == nil {
			app.errorHandler(ctx, ErrNilResponse)
			return
		}

		// A response record reshapes record responses only; free-form
		// kinds render as built.
		if route.Response != nil {
			if rr, ok := resp.(*recordResponse); ok {
				if perr := rr.projectThrough(route.Response); perr != nil {
					app.errorHandler(ctx, fmt.Errorf("%w: %v", ErrResponseEncoding, perr))
					return
				}
			}
		}

		if route.Status != 0 {
			if sd, ok := resp.(statusDefaulter); ok {
				sd.defaultStatus(route.Status)
			}
		}

		if err := resp.Render(w, r); err != nil {
			app.errorHandler(ctx, err)
		}
	}
}
