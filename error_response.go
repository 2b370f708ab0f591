package apikit

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorDetail is the payload inside the error envelope. Details carries
// per-field messages for validation failures and stays empty otherwise.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

type errorResponse struct {
	responseOptions

	detail ErrorDetail
}

// Error responds with a JSON error envelope for the given status code.
// The machine-readable code is derived from the status text, e.g. 404
// becomes "not_found".
//
// Example:
//
//	user, err := users.Get(in.Int("user_id"))
//	if err != nil {
//	    return apikit.Error(http.StatusNotFound, "user not found"), nil
//	}
func Error(status int, message string, opts ...ResponseOption) Response {
	r := &errorResponse{detail: ErrorDetail{Code: statusKey(status), Message: message}}
	r.status = status
	r.apply(opts)
	return r
}

// ErrorWithDetails responds with an error envelope that carries
// per-field messages, matching the body a failed validation produces.
func ErrorWithDetails(status int, message string, details map[string][]string, opts ...ResponseOption) Response {
	r := &errorResponse{detail: ErrorDetail{Code: statusKey(status), Message: message, Details: details}}
	r.status = status
	r.apply(opts)
	return r
}

// ErrorFrom classifies err the same way the app's error handler does
// and responds with the resulting envelope. Handlers use it to surface
// an error they chose to catch without replicating the mapping.
func ErrorFrom(err error, opts ...ResponseOption) Response {
	info := classifyError(err)
	r := &errorResponse{detail: info.Detail}
	r.status = info.Status
	r.apply(opts)
	return r
}

func (r *errorResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	body, err := json.Marshal(errorEnvelope{Error: r.detail})
	if err != nil {
		return err
	}
	r.write(w, "application/json; charset=utf-8", http.StatusInternalServerError)
	_, err = w.Write(body)
	return err
}

// statusKey turns a status code into a snake_case error code, falling
// back to "error" for codes the standard library has no text for.
func statusKey(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	key := strings.ToLower(text)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}
