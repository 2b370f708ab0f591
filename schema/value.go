package schema

type valueState uint8

const (
	stateAbsent valueState = iota
	stateNull
	statePresent
)

// Value is the three-state cell an instance holds per field: absent (the
// input never mentioned the field), null (the input named it with an
// explicit null), or present with a coerced Go value. A separate provided
// bit records whether the value came from the input or was filled in from
// the field's default, which is what sparse export and patch merging key
// on. The zero Value is absent.
type Value struct {
	state    valueState
	provided bool
	val      any
}

func newPresent(v any, provided bool) Value {
	return Value{state: statePresent, provided: provided, val: v}
}

func newNull(provided bool) Value {
	return Value{state: stateNull, provided: provided}
}

// Absent reports whether the field was neither supplied nor defaulted.
func (v Value) Absent() bool { return v.state == stateAbsent }

// Null reports whether the field was set to an explicit null.
func (v Value) Null() bool { return v.state == stateNull }

// Present reports whether the field holds a concrete value.
func (v Value) Present() bool { return v.state == statePresent }

// Provided reports whether the value (or null) came from the input rather
// than a declared default.
func (v Value) Provided() bool { return v.provided }

// Any returns the coerced value, or nil when the field is absent or null.
func (v Value) Any() any {
	if v.state != statePresent {
		return nil
	}
	return v.val
}
