package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString fails when the value is empty or whitespace-only.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    "required",
			Params: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenString checks the minimum length in characters, not bytes, so
// multi-byte input is counted the way users perceive it.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Code:    "min_length",
			Params: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLenString checks the maximum length in characters, not bytes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Code:    "max_length",
			Params: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
