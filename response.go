package apikit

import "net/http"

// Response renders itself to the ResponseWriter. Implementations set
// headers, status code, and body; a render error is passed to the app's
// error handler, which answers with a 500 if nothing was written yet.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ResponseOption applies a per-response override. Every response kind
// accepts the same options, so a handler can set a status code, attach
// headers, or set cookies regardless of how the body renders.
type ResponseOption func(*responseOptions)

// WithStatus overrides the response status code.
func WithStatus(code int) ResponseOption {
	return func(o *responseOptions) {
		o.status = code
	}
}

// WithHeader adds a response header. Setting Content-Type here replaces
// the response kind's default.
func WithHeader(key, value string) ResponseOption {
	return func(o *responseOptions) {
		if o.header == nil {
			o.header = http.Header{}
		}
		o.header.Add(key, value)
	}
}

// WithCookie sets a cookie on the response.
func WithCookie(c *http.Cookie) ResponseOption {
	return func(o *responseOptions) {
		o.cookies = append(o.cookies, c)
	}
}

type responseOptions struct {
	status  int
	header  http.Header
	cookies []*http.Cookie
}

func (o *responseOptions) apply(opts []ResponseOption) {
	for _, opt := range opts {
		opt(o)
	}
}

// defaultStatus fills the status code when no explicit override was
// given; route-level status declarations come through here.
func (o *responseOptions) defaultStatus(code int) {
	if o.status == 0 {
		o.status = code
	}
}

// write emits headers, cookies, and the status line. The content type
// applies only when no override set one.
func (o *responseOptions) write(w http.ResponseWriter, contentType string, fallback int) {
	h := w.Header()
	for key, values := range o.header {
		for _, v := range values {
			h.Add(key, v)
		}
	}
	if contentType != "" && h.Get("Content-Type") == "" {
		h.Set("Content-Type", contentType)
	}
	for _, c := range o.cookies {
		http.SetCookie(w, c)
	}

	status := o.status
	if status == 0 {
		status = fallback
	}
	w.WriteHeader(status)
}

// statusDefaulter lets the dispatch loop push a route's declared success
// status into responses that did not pick their own.
type statusDefaulter interface {
	defaultStatus(code int)
}
