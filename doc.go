// Package apikit routes HTTP requests through a declarative decode,
// validate, handle, encode pipeline built on field records.
//
// A route declares its inputs as a record of typed field descriptors
// spanning the path, query string, headers, cookies, and body. Before a
// handler runs, the app decodes every declared source, coerces values to
// their declared kinds, and checks every constraint, aggregating all
// failures into one 422 response. Handlers only ever see inputs that
// passed in full.
//
// Basic Usage:
//
//	var getUserRequest = schema.NewRecord("get_user",
//		schema.Int("user_id", schema.InPath()),
//		schema.Bool("verbose", schema.InQuery(), schema.Default(false)),
//	)
//
//	app := apikit.New(apikit.WithLogger(log))
//	app.Handle(apikit.Route{
//		Method:  http.MethodGet,
//		Pattern: "/users/{user_id}",
//		Request: getUserRequest,
//		Handler: func(ctx apikit.Context, in *schema.Instance) (apikit.Response, error) {
//			user, err := users.Get(in.Int("user_id"))
//			if err != nil {
//				return nil, apikit.ErrNotFound
//			}
//			return apikit.Record(user), nil
//		},
//	})
//	http.ListenAndServe(":8080", app)
//
// Partial Updates:
//
// A patch route pairs a request record for the non-body sources with a
// patch record for the body. The body decodes sparsely, so the handler
// can tell a field set to null apart from a field never sent:
//
//	app.Handle(apikit.Route{
//		Method:  http.MethodPatch,
//		Pattern: "/users/{user_id}",
//		Request: userPathRequest,
//		Patch:   userPatch,
//		PatchHandler: func(ctx apikit.Context, in *schema.Instance, patch *schema.Patch) (apikit.Response, error) {
//			updated, err := users.Update(in.Int("user_id"), patch)
//			if err != nil {
//				return nil, err
//			}
//			return apikit.Record(updated), nil
//		},
//	})
//
// Responses:
//
// Handlers return one of the response kinds: Record and Records for
// instances, JSON for free-form payloads, Text and HTML for plain
// bodies, File and ServeFile for downloads, Redirect, Empty, and Error.
// Every kind accepts the same options, so WithStatus, WithHeader, and
// WithCookie work uniformly. A route may also declare a Response record;
// record responses are then projected through it, hiding every field it
// does not name and answering 500 if the payload does not satisfy it.
//
// Errors:
//
// Validation failures answer 422 with per-field messages, an unreadable
// body answers 400, catalog errors such as ErrNotFound keep their own
// status, and everything else answers an opaque 500. All error bodies
// share the envelope:
//
//	{"error": {"code": "unprocessable_entity", "message": "request validation failed", "details": {"age": ["must be at least 0"]}}}
package apikit
