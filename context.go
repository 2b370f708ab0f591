package apikit

import (
	"context"
	"net/http"
	"time"
)

// Context is what a handler receives instead of the raw writer/request
// pair. It embeds the request's context.Context, so deadlines and
// cancellation flow through, and exposes the underlying HTTP objects for
// the rare handler that needs raw access (request introspection, manual
// streaming).
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext builds a Context from an HTTP exchange.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// context.Context methods delegate to the request's context.

func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}

// ContextKey provides collision-free context keys. Create them as
// package-level variables.
type ContextKey struct{ name string }

// NewContextKey creates a context key with a name used for debugging.
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

func (c *ContextKey) String() string {
	return c.name
}

// ContextValue retrieves a typed value from the context, or the zero
// value of T when the key is missing or holds a different type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK retrieves a typed value and reports whether the key was
// present with the expected type, which distinguishes a missing key from
// a stored zero value.
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}
