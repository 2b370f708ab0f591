package apikit

import "net/http"

type textResponse struct {
	responseOptions
	body        string
	contentType string
}

// Text responds with a plain text body.
//
// Example:
//
//	return apikit.Text("Hello World")
func Text(body string, opts ...ResponseOption) Response {
	r := &textResponse{body: body, contentType: "text/plain; charset=utf-8"}
	r.apply(opts)
	return r
}

// HTML responds with a raw HTML body, passed through untouched. The
// caller owns escaping; nothing is templated or rewritten.
//
// Example:
//
//	return apikit.HTML("<h1>Hello World</h1>")
func HTML(body string, opts ...ResponseOption) Response {
	r := &textResponse{body: body, contentType: "text/html; charset=utf-8"}
	r.apply(opts)
	return r
}

func (r *textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	r.write(w, r.contentType, http.StatusOK)
	_, err := w.Write([]byte(r.body))
	return err
}
