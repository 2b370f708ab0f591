package schema

import (
	"fmt"
	"time"
)

// Instance is one validated value of a record. Instances only come out
// of Decode, Make, or a patch merge, so holding one means every field
// already passed coercion and validation. They live for a single
// request and are discarded with the response.
//
// The typed accessors panic on a field name the record does not declare
// or on a kind mismatch; both are programming errors, not input errors.
type Instance struct {
	record *Record
	values []Value
}

// Record returns the record this instance was decoded against.
func (in *Instance) Record() *Record { return in.record }

// Value returns the three-state cell for a field.
func (in *Instance) Value(name string) Value {
	i, ok := in.record.index[name]
	if !ok {
		panic(fmt.Sprintf("schema: record %q has no field %q", in.record.name, name))
	}
	return in.values[i]
}

// Get returns the coerced value for a field, or nil when it is absent
// or null.
func (in *Instance) Get(name string) any {
	return in.Value(name).Any()
}

// Has reports whether the field holds a concrete value.
func (in *Instance) Has(name string) bool {
	return in.Value(name).Present()
}

// String returns a string field's value, or "" when absent or null.
func (in *Instance) String(name string) string {
	v := in.Get(name)
	if v == nil {
		return ""
	}
	return v.(string)
}

// Int returns an integer field's value, or 0 when absent or null.
func (in *Instance) Int(name string) int {
	v := in.Get(name)
	if v == nil {
		return 0
	}
	return v.(int)
}

// Float returns a float field's value, or 0 when absent or null.
func (in *Instance) Float(name string) float64 {
	v := in.Get(name)
	if v == nil {
		return 0
	}
	return v.(float64)
}

// Bool returns a boolean field's value, or false when absent or null.
func (in *Instance) Bool(name string) bool {
	v := in.Get(name)
	if v == nil {
		return false
	}
	return v.(bool)
}

// Time returns a date-time field's value, or the zero time when absent
// or null.
func (in *Instance) Time(name string) time.Time {
	v := in.Get(name)
	if v == nil {
		return time.Time{}
	}
	return v.(time.Time)
}

// List returns a list field's elements, or nil when absent or null.
func (in *Instance) List(name string) []any {
	v := in.Get(name)
	if v == nil {
		return nil
	}
	return v.([]any)
}

// Strings returns a string-list field's elements.
func (in *Instance) Strings(name string) []string {
	elems := in.List(name)
	if elems == nil {
		return nil
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.(string)
	}
	return out
}

// Ints returns an integer-list field's elements.
func (in *Instance) Ints(name string) []int {
	elems := in.List(name)
	if elems == nil {
		return nil
	}
	out := make([]int, len(elems))
	for i, e := range elems {
		out[i] = e.(int)
	}
	return out
}

// Nested returns a record field's instance, or nil when absent or null.
func (in *Instance) Nested(name string) *Instance {
	v := in.Get(name)
	if v == nil {
		return nil
	}
	return v.(*Instance)
}

// Instances returns a record-list field's elements.
func (in *Instance) Instances(name string) []*Instance {
	elems := in.List(name)
	if elems == nil {
		return nil
	}
	out := make([]*Instance, len(elems))
	for i, e := range elems {
		out[i] = e.(*Instance)
	}
	return out
}

// File returns a file field's upload, or nil when absent.
func (in *Instance) File(name string) *FileUpload {
	v := in.Get(name)
	if v == nil {
		return nil
	}
	return v.(*FileUpload)
}

// Files returns a file-list field's uploads.
func (in *Instance) Files(name string) []*FileUpload {
	elems := in.List(name)
	if elems == nil {
		return nil
	}
	out := make([]*FileUpload, len(elems))
	for i, e := range elems {
		out[i] = e.(*FileUpload)
	}
	return out
}

// Values exports the instance as a plain map: present fields with their
// values, null fields as nil entries, absent fields omitted. Nested
// instances export recursively.
func (in *Instance) Values() map[string]any {
	out := make(map[string]any, len(in.values))
	for i := range in.record.fields {
		v := in.values[i]
		if v.Absent() {
			continue
		}
		name := in.record.fields[i].name
		if v.Null() {
			out[name] = nil
			continue
		}
		out[name] = exportValue(v.val)
	}
	return out
}

// ProvidedValues exports only the fields the input actually supplied,
// leaving out everything filled in from defaults. This is the sparse
// view a partial update stores or forwards.
func (in *Instance) ProvidedValues() map[string]any {
	out := make(map[string]any)
	for i := range in.record.fields {
		v := in.values[i]
		if v.Absent() || !v.Provided() {
			continue
		}
		name := in.record.fields[i].name
		if v.Null() {
			out[name] = nil
			continue
		}
		out[name] = exportValue(v.val)
	}
	return out
}

// Project re-validates the instance's values against another record and
// returns the narrowed result. Fields the target does not declare are
// dropped; fields it declares but the instance cannot supply fail the
// target's own requiredness rules.
func (in *Instance) Project(target *Record) (*Instance, error) {
	return target.Make(in.Values())
}

func exportValue(v any) any {
	switch t := v.(type) {
	case *Instance:
		return t.Values()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = exportValue(e)
		}
		return out
	default:
		return v
	}
}
