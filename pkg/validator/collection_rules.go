package validator

import "fmt"

// NotEmptySlice fails when the slice has no elements.
func NotEmptySlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not be empty",
			Code:    "empty",
			Params: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenSlice validates the minimum number of elements.
func MinLenSlice[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at least %d items", min),
			Code:    "min_items",
			Params: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLenSlice validates the maximum number of elements.
func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at most %d items", max),
			Code:    "max_items",
			Params: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
