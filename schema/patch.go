package schema

import "fmt"

// Patch is a decoded partial update: a sparse set of field values where
// only the keys the input named are marked present. Applying a patch
// merges exactly those fields onto an existing instance; everything the
// input did not mention keeps its old value, including fields set to
// null earlier.
type Patch struct {
	record *Record
	values []Value
}

// Record returns the record the patch was decoded against.
func (p *Patch) Record() *Record { return p.record }

// Has reports whether the input touched the field, with a value or an
// explicit null.
func (p *Patch) Has(name string) bool {
	i, ok := p.record.index[name]
	if !ok {
		return false
	}
	return !p.values[i].Absent()
}

// IsEmpty reports whether the input touched no fields at all.
func (p *Patch) IsEmpty() bool {
	for _, v := range p.values {
		if !v.Absent() {
			return false
		}
	}
	return true
}

// Fields returns the touched field names in declaration order.
func (p *Patch) Fields() []string {
	var out []string
	for i := range p.record.fields {
		if !p.values[i].Absent() {
			out = append(out, p.record.fields[i].name)
		}
	}
	return out
}

// Value returns the three-state cell for a touched or untouched field.
func (p *Patch) Value(name string) Value {
	i, ok := p.record.index[name]
	if !ok {
		panic(fmt.Sprintf("schema: record %q has no field %q", p.record.name, name))
	}
	return p.values[i]
}

// Values exports the touched fields as a plain map, nulls as nil
// entries.
func (p *Patch) Values() map[string]any {
	out := make(map[string]any)
	for i := range p.record.fields {
		v := p.values[i]
		if v.Absent() {
			continue
		}
		name := p.record.fields[i].name
		if v.Null() {
			out[name] = nil
			continue
		}
		out[name] = exportValue(v.val)
	}
	return out
}

// Apply merges the patch onto a base instance and returns the merged
// copy; the base is left untouched. Only touched fields are written.
// The base record's record-level checks re-run on the merged result, so
// a patch cannot sneak a complete instance past a cross-field rule. The
// patch record's fields must all be declared on the base record;
// applying a patch with an unknown field panics, since that is a wiring
// mistake between the route and the store, not bad input.
func (p *Patch) Apply(base *Instance) (*Instance, error) {
	merged := make([]Value, len(base.values))
	copy(merged, base.values)

	for i := range p.record.fields {
		pv := p.values[i]
		if pv.Absent() {
			continue
		}

		name := p.record.fields[i].name
		j, ok := base.record.index[name]
		if !ok {
			panic(fmt.Sprintf("schema: patch field %q is not declared on record %q", name, base.record.name))
		}
		merged[j] = pv
	}

	out := &Instance{record: base.record, values: merged}
	if errs := base.record.runChecks(out); len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}
