package schema

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/apikit/pkg/validator"
)

// Decode coerces and validates one request's raw slots against the
// record. It makes a single pass over the whole input: every missing
// required field, uncoercible value, and violated constraint is
// collected before anything is returned, so the caller sees either a
// complete instance or the full list of failures, never a partial mix.
func (r *Record) Decode(raw *RawInput) (*Instance, error) {
	if raw == nil {
		raw = &RawInput{}
	}
	return r.decode(raw.slotFor, false)
}

// Make builds an instance from plain Go values keyed by field name. It
// runs the same coerce and validate path as Decode, so handlers and
// fixtures cannot construct an instance that a request could not have
// produced.
func (r *Record) Make(values map[string]any) (*Instance, error) {
	return r.decode(func(f *Field) slot {
		v, ok := values[f.name]
		return slot{value: v, found: ok, null: ok && v == nil}
	}, false)
}

// MustMake is Make for static fixtures; it panics on invalid values.
func (r *Record) MustMake(values map[string]any) *Instance {
	in, err := r.Make(values)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return in
}

// DecodePatch decodes a sparse update from the raw body. Only keys the
// input actually names become part of the patch: absent fields stay
// absent regardless of requiredness, defaults do not fill in, and
// constraints run only on the fields that are present. Record-level
// checks are deferred until the patch is applied to a base instance.
func (r *Record) DecodePatch(raw *RawInput) (*Patch, error) {
	if raw == nil {
		raw = &RawInput{}
	}
	in, err := r.decode(raw.slotFor, true)
	if err != nil {
		return nil, err
	}
	return &Patch{record: r, values: in.values}, nil
}

func (r *Record) decode(get func(*Field) slot, sparse bool) (*Instance, error) {
	values := make([]Value, len(r.fields))
	var errs Errors

	for i := range r.fields {
		f := &r.fields[i]
		s := get(f)

		switch {
		case !s.found:
			if sparse {
				continue
			}
			switch {
			case f.defFunc != nil:
				v, cerrs := coerceValue(f, f.name, f.defFunc())
				if len(cerrs) > 0 {
					errs = append(errs, cerrs...)
					continue
				}
				values[i] = newPresent(v, false)
			case f.hasDefault && f.defNull:
				values[i] = newNull(false)
			case f.hasDefault:
				values[i] = newPresent(f.def, false)
			case f.optional:
				// Stays absent.
			default:
				errs = append(errs, FieldError{
					Field:   f.name,
					Reason:  ReasonMissing,
					Code:    "required",
					Message: "field is required",
				})
			}

		case s.null:
			if !f.nullable {
				errs = append(errs, FieldError{
					Field:   f.name,
					Reason:  ReasonTypeMismatch,
					Code:    "null",
					Message: "must not be null",
				})
				continue
			}
			values[i] = newNull(true)

		default:
			v, cerrs := coerceValue(f, f.name, s.value)
			if len(cerrs) > 0 {
				errs = append(errs, cerrs...)
				continue
			}
			values[i] = newPresent(v, true)
		}
	}

	// Constraints see only values the input supplied; declared defaults
	// are trusted as-is. Rules across all fields run through a single
	// Apply so nothing short-circuits.
	var rules []validator.Rule
	for i := range r.fields {
		f := &r.fields[i]
		v := values[i]
		if !v.Present() || !v.Provided() {
			continue
		}
		for _, c := range f.constraints {
			rules = append(rules, c.rule(f.name, v.val))
		}
	}
	if err := validator.Apply(rules...); err != nil {
		var verrs validator.ValidationErrors
		errors.As(err, &verrs)
		for _, ve := range verrs {
			errs = append(errs, FieldError{
				Field:   ve.Field,
				Reason:  ReasonConstraintViolation,
				Code:    ve.Code,
				Message: ve.Message,
			})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	in := &Instance{record: r, values: values}

	if !sparse && len(r.checks) > 0 {
		if cerrs := r.runChecks(in); len(cerrs) > 0 {
			return nil, cerrs
		}
	}

	return in, nil
}

// coerceValue converts one raw slot value to the field's canonical Go
// representation. name carries the full path for error reporting, so
// nested and list failures read "address.city" and "tags[2]".
func coerceValue(f *Field, name string, raw any) (any, Errors) {
	switch f.kind {
	case KindList:
		return coerceList(f, name, raw)
	case KindRecord:
		return coerceNested(f.sub, name, raw)
	case KindFile:
		v, fe := coerceFile(name, raw)
		if fe != nil {
			return nil, Errors{*fe}
		}
		return v, nil
	default:
		v, fe := coerceScalar(f.kind, name, raw, f.transforms)
		if fe != nil {
			return nil, Errors{*fe}
		}
		return v, nil
	}
}

func coerceList(f *Field, name string, raw any) (any, Errors) {
	elems, ok := rawElems(raw)
	if !ok {
		return nil, Errors{*typeError(name, "list", "must be a list")}
	}

	out := make([]any, 0, len(elems))
	var errs Errors
	for i, e := range elems {
		elemName := name + "[" + strconv.Itoa(i) + "]"

		var v any
		var cerrs Errors
		switch f.elem {
		case KindRecord:
			v, cerrs = coerceNested(f.sub, elemName, e)
		case KindFile:
			file, fe := coerceFile(elemName, e)
			if fe != nil {
				cerrs = Errors{*fe}
			}
			v = file
		default:
			scalar, fe := coerceScalar(f.elem, elemName, e, f.transforms)
			if fe != nil {
				cerrs = Errors{*fe}
			}
			v = scalar
		}

		if len(cerrs) > 0 {
			errs = append(errs, cerrs...)
			continue
		}
		out = append(out, v)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func rawElems(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []*FileUpload:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, true
	case string, json.Number, bool, nil, map[string]any:
		return nil, false
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func coerceNested(sub *Record, name string, raw any) (any, Errors) {
	var m map[string]any
	switch v := raw.(type) {
	case map[string]any:
		m = v
	case *Instance:
		if v.record == sub {
			return v, nil
		}
		m = v.Values()
	default:
		return nil, Errors{*typeError(name, "object", "must be an object")}
	}

	in, err := sub.Make(m)
	if err != nil {
		errs, _ := AsErrors(err)
		for i := range errs {
			errs[i].Field = name + "." + errs[i].Field
		}
		return nil, errs
	}
	return in, nil
}

func coerceFile(name string, raw any) (*FileUpload, *FieldError) {
	switch v := raw.(type) {
	case *FileUpload:
		return v, nil
	case []*FileUpload:
		if len(v) > 0 {
			return v[0], nil
		}
	}
	return nil, typeError(name, "file", "must be a file")
}

func coerceScalar(kind Kind, name string, raw any, transforms []func(string) string) (any, *FieldError) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, typeError(name, "string", "must be a string")
		}
		for _, t := range transforms {
			s = t(s)
		}
		return s, nil

	case KindInt:
		return coerceInt(name, raw)

	case KindFloat:
		return coerceFloat(name, raw)

	case KindBool:
		return coerceBool(name, raw)

	case KindTime:
		return coerceTime(name, raw)
	}

	return nil, typeError(name, kind.String(), "must be a "+kind.String())
}

func coerceInt(name string, raw any) (any, *FieldError) {
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		if f, err := v.Float64(); err == nil {
			return floatToInt(name, f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i, nil
		}
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return floatToInt(name, v)
	}
	return nil, typeError(name, "integer", "must be an integer")
}

func floatToInt(name string, f float64) (any, *FieldError) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return nil, typeError(name, "integer", "must be an integer")
	}
	return int(f), nil
}

func coerceFloat(name string, raw any) (any, *FieldError) {
	switch v := raw.(type) {
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, nil
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, nil
		}
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return nil, typeError(name, "number", "must be a number")
}

func coerceBool(name string, raw any) (any, *FieldError) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, nil
		}
		switch strings.ToLower(v) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
	case json.Number:
		if b, err := strconv.ParseBool(string(v)); err == nil {
			return b, nil
		}
	}
	return nil, typeError(name, "boolean", "must be a boolean")
}

func coerceTime(name string, raw any) (any, *FieldError) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			return t, nil
		}
	}
	return nil, typeError(name, "datetime", "must be a valid date or date-time")
}

func typeError(name, code, message string) *FieldError {
	return &FieldError{
		Field:   name,
		Reason:  ReasonTypeMismatch,
		Code:    code,
		Message: message,
	}
}
