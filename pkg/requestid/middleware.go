package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the canonical request-ID header name.
const Header = "X-Request-ID"

const maxIDLength = 128

var validIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware ensures every request carries a correlation ID. A valid
// client-supplied X-Request-ID is reused; anything else is replaced with a
// fresh UUID. The ID is stored in the request context and echoed back in the
// response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !validID(requestID) {
			requestID = uuid.New().String()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// FromRequest returns the request's correlation ID, preferring the context
// value set by Middleware and falling back to the raw header.
func FromRequest(r *http.Request) string {
	if id := FromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get(Header)
}

func validID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRe.MatchString(id)
}
