package apikit

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	responseOptions
	body any
}

// JSON responds with any marshalable value rendered verbatim. Use it for
// free-form payloads that no record describes; record-backed responses
// should go through Record so field order and projection apply.
//
// Example:
//
//	return apikit.JSON(map[string]any{"status": "ok"})
func JSON(v any, opts ...ResponseOption) Response {
	r := &jsonResponse{body: v}
	r.apply(opts)
	return r
}

func (r *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	body, err := json.Marshal(r.body)
	if err != nil {
		return err
	}

	r.write(w, "application/json; charset=utf-8", http.StatusOK)
	_, err = w.Write(body)
	return err
}
