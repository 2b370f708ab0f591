package environment

import "net/http"

// Middleware attaches the given environment to every request context, so
// downstream handlers and loggers can branch on it without plumbing an
// extra parameter.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), env)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
