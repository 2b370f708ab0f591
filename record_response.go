package apikit

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/apikit/schema"
)

// recordResponse renders one instance or a list of instances as JSON in
// field declaration order. When the route declares a response record,
// dispatch projects the instances through it before rendering.
type recordResponse struct {
	responseOptions
	single *schema.Instance
	list   []*schema.Instance
	isList bool
}

// Record responds with a single instance. The instance encodes in its
// record's field declaration order; if the route declares a response
// record, the instance is projected through it first, hiding every field
// the response record does not name.
//
// Example:
//
//	func getUser(ctx apikit.Context, in *schema.Instance) (apikit.Response, error) {
//		user, err := users.Get(in.Int("user_id"))
//		if err != nil {
//			return apikit.Error(http.StatusNotFound, "user not found"), nil
//		}
//		return apikit.Record(user), nil
//	}
func Record(in *schema.Instance, opts ...ResponseOption) Response {
	r := &recordResponse{single: in}
	r.apply(opts)
	return r
}

// Records responds with a JSON array of instances, projected like
// Record. A nil or empty slice renders as an empty array, never null.
func Records(ins []*schema.Instance, opts ...ResponseOption) Response {
	r := &recordResponse{list: ins, isList: true}
	r.apply(opts)
	return r
}

func (r *recordResponse) projectThrough(target *schema.Record) error {
	if r.isList {
		projected := make([]*schema.Instance, len(r.list))
		for i, in := range r.list {
			p, err := in.Project(target)
			if err != nil {
				return err
			}
			projected[i] = p
		}
		r.list = projected
		return nil
	}

	if r.single == nil {
		return nil
	}
	p, err := r.single.Project(target)
	if err != nil {
		return err
	}
	r.single = p
	return nil
}

func (r *recordResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	var body []byte
	var err error
	if r.isList {
		list := r.list
		if list == nil {
			list = []*schema.Instance{}
		}
		body, err = json.Marshal(list)
	} else {
		body, err = json.Marshal(r.single)
	}
	if err != nil {
		return err
	}

	r.write(w, "application/json; charset=utf-8", http.StatusOK)
	_, err = w.Write(body)
	return err
}
