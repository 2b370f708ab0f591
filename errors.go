package apikit

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")

	// ErrMalformedBody indicates the request body could not be parsed at
	// all: invalid JSON, a top-level value that is not an object, or a
	// content type the pipeline does not read. The app answers 400, as
	// opposed to 422 for a readable body that fails validation.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrResponseEncoding indicates a handler's payload failed the
	// route's response record. The fault is the server's, so the app
	// answers 500 and logs the underlying field errors.
	ErrResponseEncoding = errors.New("response does not match response record")
)
