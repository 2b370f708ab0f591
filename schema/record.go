package schema

import (
	"errors"
	"fmt"
)

// Check is a record-level rule evaluated after every field has decoded
// and validated. It sees the complete instance, so it can compare fields
// against each other. Return nil on success, a Violation (or an Errors
// aggregate) to report named fields, or any other error to report the
// body as a whole.
type Check func(in *Instance) error

// Record is a named, ordered set of field declarations. The field arena
// and the name index are computed once when the record is defined and
// never change afterwards, which is what makes records safe to share
// across requests without locking.
//
// Example:
//
//	var User = schema.NewRecord("User",
//		schema.String("name", schema.MaxLen(50)),
//		schema.Int("age", schema.Min(18), schema.Max(120)),
//		schema.String("city", schema.Default("Unknown"), schema.MaxLen(15)),
//	)
type Record struct {
	name   string
	fields []Field
	index  map[string]int
	checks []Check
}

// NewRecord defines a record from an ordered list of fields. Duplicate
// field names and invalid declarations panic, so a broken record is
// caught when the program starts.
func NewRecord(name string, fields ...Field) *Record {
	if name == "" {
		panic("schema: record name must not be empty")
	}

	r := &Record{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		f.finalize(name)
		if _, exists := r.index[f.name]; exists {
			panic(fmt.Sprintf("schema: record %q: duplicate field %q", name, f.name))
		}
		r.index[f.name] = len(r.fields)
		r.fields = append(r.fields, f)
	}

	return r
}

// Extend derives a new record from this one. The child starts with every
// parent field in declaration order; a field redeclared by the child
// replaces the parent's descriptor wholesale at its original position
// (constraints are not merged), and new fields append after the parent's.
// Parent checks carry over.
//
// Example:
//
//	var UserIn = UserBase.Extend("UserIn",
//		schema.String("password", schema.MinLen(8)),
//	)
func (r *Record) Extend(name string, fields ...Field) *Record {
	if name == "" {
		panic("schema: record name must not be empty")
	}

	child := &Record{
		name:   name,
		fields: make([]Field, len(r.fields), len(r.fields)+len(fields)),
		index:  make(map[string]int, len(r.fields)+len(fields)),
		checks: append([]Check(nil), r.checks...),
	}
	copy(child.fields, r.fields)
	for n, i := range r.index {
		child.index[n] = i
	}

	for _, f := range fields {
		f.finalize(name)
		if i, exists := child.index[f.name]; exists {
			child.fields[i] = f
			continue
		}
		child.index[f.name] = len(child.fields)
		child.fields = append(child.fields, f)
	}

	return child
}

// WithCheck derives a new record with the given record-level checks
// appended. The receiver is left untouched.
func (r *Record) WithCheck(checks ...Check) *Record {
	child := &Record{
		name:   r.name,
		fields: r.fields,
		index:  r.index,
		checks: append(append([]Check(nil), r.checks...), checks...),
	}
	return child
}

// Name returns the record name.
func (r *Record) Name() string { return r.name }

// Fields returns the field declarations in order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Field looks up a field declaration by name.
func (r *Record) Field(name string) (Field, bool) {
	i, ok := r.index[name]
	if !ok {
		return Field{}, false
	}
	return r.fields[i], true
}

// FieldNames returns the field names in declaration order.
func (r *Record) FieldNames() []string {
	out := make([]string, len(r.fields))
	for i := range r.fields {
		out[i] = r.fields[i].name
	}
	return out
}

// SourceFields returns the names of fields decoding from the given
// source, in declaration order.
func (r *Record) SourceFields(src Source) []string {
	var out []string
	for i := range r.fields {
		if r.fields[i].source == src {
			out = append(out, r.fields[i].name)
		}
	}
	return out
}

// runChecks evaluates the record-level checks against a complete
// instance and aggregates every failure.
func (r *Record) runChecks(in *Instance) Errors {
	var errs Errors
	for _, check := range r.checks {
		err := check(in)
		if err == nil {
			continue
		}

		var many Errors
		var one FieldError
		switch {
		case errors.As(err, &many):
			errs = append(errs, many...)
		case errors.As(err, &one):
			errs = append(errs, one)
		default:
			errs = append(errs, FieldError{
				Field:   "body",
				Reason:  ReasonConstraintViolation,
				Code:    "record_check",
				Message: err.Error(),
			})
		}
	}
	return errs
}

// assertBodyOnly panics unless every field of the record decodes from
// the body. Nested records and patch targets cannot reach path, query,
// header, or cookie slots.
func (r *Record) assertBodyOnly(parent, field string) {
	for i := range r.fields {
		if r.fields[i].source != SourceBody {
			panic(fmt.Sprintf("schema: record %q: field %q: nested record %q must hold body fields only", parent, field, r.name))
		}
	}
}
