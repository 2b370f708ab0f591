package apikit

import "net/http"

// emptyResponse writes a status code and nothing else.
type emptyResponse struct {
	responseOptions
}

// Empty responds with 204 No Content and no body. It suits deletes and
// updates that have nothing to report back.
//
// Example:
//
//	func deleteItem(ctx apikit.Context, in *schema.Instance) (apikit.Response, error) {
//	    if err := items.Delete(in.Int("item_id")); err != nil {
//	        return nil, err
//	    }
//	    return apikit.Empty(), nil
//	}
func Empty(opts ...ResponseOption) Response {
	r := &emptyResponse{}
	r.apply(opts)
	return r
}

func (r *emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	r.write(w, "", http.StatusNoContent)
	return nil
}
