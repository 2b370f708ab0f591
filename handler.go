package apikit

import "github.com/dmitrymomot/apikit/schema"

// HandlerFunc handles a decoded request. The instance is the validated
// input assembled from every source the route's request record declares,
// or nil when the route declares none; handlers read it with the typed
// getters and never see a request that failed validation.
//
// Returning an error hands control to the app's error handler. Returning
// a Response renders it; both at once is a mistake and the error wins.
//
// Example:
//
//	func createUser(ctx apikit.Context, in *schema.Instance) (apikit.Response, error) {
//		user, err := users.Insert(in)
//		if err != nil {
//			return nil, err
//		}
//		return apikit.Record(user), nil
//	}
type HandlerFunc func(ctx Context, in *schema.Instance) (Response, error)

// PatchHandlerFunc handles a partial update. The instance carries the
// non-body sources decoded through the route's request record and is nil
// when the route declares none; the patch carries only the body fields
// the client actually sent.
type PatchHandlerFunc func(ctx Context, in *schema.Instance, patch *schema.Patch) (Response, error)

// ErrorHandler renders errors surfaced by decoding, handlers, or
// response rendering. The app installs a default that maps errors to the
// JSON error envelope; replace it with WithErrorHandler.
type ErrorHandler func(ctx Context, err error)
