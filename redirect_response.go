package apikit

import (
	"net/http"
	"net/url"
)

type redirectResponse struct {
	responseOptions
	url string
}

// Redirect responds with a 303 See Other to the given URL.
//
// Example:
//
//	return apikit.Redirect("/items/" + strconv.Itoa(id))
func Redirect(target string, opts ...ResponseOption) Response {
	r := &redirectResponse{url: target}
	r.status = http.StatusSeeOther
	r.apply(opts)
	return r
}

// RedirectWithCode redirects with a specific status code. Valid codes
// are 301, 302, 303, 307, and 308.
func RedirectWithCode(target string, code int) Response {
	r := &redirectResponse{url: target}
	r.status = code
	return r
}

func (r *redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	for key, values := range r.header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	for _, c := range r.cookies {
		http.SetCookie(w, c)
	}
	http.Redirect(w, req, r.url, r.status)
	return nil
}

type redirectBackResponse struct {
	fallback string
	code     int
}

// RedirectBack redirects to the referrer when it points at the same
// host, otherwise to the fallback URL. Uses 303 See Other.
func RedirectBack(fallback string) Response {
	return &redirectBackResponse{fallback: fallback, code: http.StatusSeeOther}
}

func (r *redirectBackResponse) Render(w http.ResponseWriter, req *http.Request) error {
	target := r.fallback
	if referer := req.Header.Get("Referer"); referer != "" && sameHost(referer, req) {
		target = referer
	}
	http.Redirect(w, req, target, r.code)
	return nil
}

// sameHost reports whether the URL stays on the request's host; an empty
// host means a relative URL.
func sameHost(raw string, r *http.Request) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Host == "" || parsed.Host == r.Host
}
