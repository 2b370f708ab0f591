package schema

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/dmitrymomot/apikit/pkg/validator"
)

// constraint is one declared rule on a field. The rule builder is called
// at validation time with the full field path and the coerced value.
type constraint struct {
	code string
	rule func(field string, value any) validator.Rule
}

func constraintOption(code string, kinds []Kind, rule func(field string, value any) validator.Rule) FieldOption {
	return func(f *Field) {
		if kinds != nil && !slices.Contains(kinds, f.kind) {
			panic(fmt.Sprintf("schema: field %q: %s does not apply to %s fields", f.name, code, f.kind))
		}
		f.constraints = append(f.constraints, constraint{code: code, rule: rule})
	}
}

var (
	stringKinds  = []Kind{KindString}
	numericKinds = []Kind{KindInt, KindFloat}
	listKinds    = []Kind{KindList}
	scalarKinds  = []Kind{KindString, KindInt, KindFloat, KindBool}
)

// MinLen requires a string of at least n characters, counted in runes.
func MinLen(n int) FieldOption {
	return constraintOption("min_length", stringKinds, func(field string, value any) validator.Rule {
		return validator.MinLenString(field, value.(string), n)
	})
}

// MaxLen requires a string of at most n characters, counted in runes.
func MaxLen(n int) FieldOption {
	return constraintOption("max_length", stringKinds, func(field string, value any) validator.Rule {
		return validator.MaxLenString(field, value.(string), n)
	})
}

// NonBlank rejects strings that are empty or whitespace only.
func NonBlank() FieldOption {
	return constraintOption("required", stringKinds, func(field string, value any) validator.Rule {
		return validator.RequiredString(field, value.(string))
	})
}

// Min requires a numeric value greater than or equal to the bound.
func Min(bound float64) FieldOption {
	return constraintOption("greater_than_equal", numericKinds, func(field string, value any) validator.Rule {
		return validator.MinNum(field, toFloat64(value), bound)
	})
}

// Max requires a numeric value less than or equal to the bound.
func Max(bound float64) FieldOption {
	return constraintOption("less_than_equal", numericKinds, func(field string, value any) validator.Rule {
		return validator.MaxNum(field, toFloat64(value), bound)
	})
}

// GreaterThan requires a numeric value strictly above the bound.
func GreaterThan(bound float64) FieldOption {
	return constraintOption("greater_than", numericKinds, func(field string, value any) validator.Rule {
		return validator.GreaterThanNum(field, toFloat64(value), bound)
	})
}

// LessThan requires a numeric value strictly below the bound.
func LessThan(bound float64) FieldOption {
	return constraintOption("less_than", numericKinds, func(field string, value any) validator.Rule {
		return validator.LessThanNum(field, toFloat64(value), bound)
	})
}

// OneOf restricts a scalar field to a fixed set of values. The allowed
// values are coerced to the field's kind when the record is defined, so
// a typo'd enum panics at startup instead of rejecting every request.
func OneOf(allowed ...any) FieldOption {
	if len(allowed) == 0 {
		panic("schema: OneOf requires at least one allowed value")
	}

	return func(f *Field) {
		if !slices.Contains(scalarKinds, f.kind) {
			panic(fmt.Sprintf("schema: field %q: one_of does not apply to %s fields", f.name, f.kind))
		}

		coerced := make([]any, len(allowed))
		for i, a := range allowed {
			v, fe := coerceScalar(f.kind, f.name, a, nil)
			if fe != nil {
				panic(fmt.Sprintf("schema: field %q: one_of value %v is not a valid %s", f.name, a, f.kind))
			}
			coerced[i] = v
		}

		f.constraints = append(f.constraints, constraint{
			code: "enum",
			rule: func(field string, value any) validator.Rule {
				return validator.OneOf(field, value, coerced)
			},
		})
	}
}

// Pattern requires a string matching the regular expression. The pattern
// compiles when the record is defined; an invalid pattern panics there.
func Pattern(pattern string) FieldOption {
	re := regexp.MustCompile(pattern)
	return constraintOption("pattern", stringKinds, func(field string, value any) validator.Rule {
		return validator.MatchesPattern(field, value.(string), re)
	})
}

// Email requires a syntactically valid email address.
func Email() FieldOption {
	return constraintOption("email", stringKinds, func(field string, value any) validator.Rule {
		return validator.ValidEmail(field, value.(string))
	})
}

// URL requires an absolute URL with a scheme and host.
func URL() FieldOption {
	return constraintOption("url", stringKinds, func(field string, value any) validator.Rule {
		return validator.ValidURL(field, value.(string))
	})
}

// URLScheme requires an absolute URL using one of the given schemes.
func URLScheme(schemes ...string) FieldOption {
	return constraintOption("url_scheme", stringKinds, func(field string, value any) validator.Rule {
		return validator.ValidURLWithScheme(field, value.(string), schemes)
	})
}

// MinItems requires a list with at least n elements.
func MinItems(n int) FieldOption {
	return constraintOption("min_items", listKinds, func(field string, value any) validator.Rule {
		return validator.MinLenSlice(field, value.([]any), n)
	})
}

// MaxItems requires a list with at most n elements.
func MaxItems(n int) FieldOption {
	return constraintOption("max_items", listKinds, func(field string, value any) validator.Rule {
		return validator.MaxLenSlice(field, value.([]any), n)
	})
}

// NotEmpty rejects empty lists.
func NotEmpty() FieldOption {
	return constraintOption("empty", listKinds, func(field string, value any) validator.Rule {
		return validator.NotEmptySlice(field, value.([]any))
	})
}

// Custom attaches a caller-defined predicate. The code identifies the
// rule in error payloads and the message is reported verbatim when the
// predicate returns false.
func Custom(code, message string, fn func(value any) bool) FieldOption {
	if fn == nil {
		panic("schema: Custom requires a predicate")
	}

	return constraintOption(code, nil, func(field string, value any) validator.Rule {
		return validator.Rule{
			Check: func() bool { return fn(value) },
			Error: validator.ValidationError{
				Field:   field,
				Message: message,
				Code:    code,
				Params:  map[string]any{"field": field},
			},
		}
	})
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	default:
		panic(fmt.Sprintf("schema: numeric constraint on non-numeric value %T", v))
	}
}
