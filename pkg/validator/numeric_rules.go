package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
			Code:    "greater_than_equal",
			Params: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
			Code:    "less_than_equal",
			Params: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// GreaterThanNum validates that a numeric value is strictly greater than the limit.
func GreaterThanNum[T Numeric](field string, value T, limit T) Rule {
	return Rule{
		Check: func() bool {
			return value > limit
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be greater than %v", limit),
			Code:    "greater_than",
			Params: map[string]any{
				"field": field,
				"limit": limit,
			},
		},
	}
}

// LessThanNum validates that a numeric value is strictly less than the limit.
func LessThanNum[T Numeric](field string, value T, limit T) Rule {
	return Rule{
		Check: func() bool {
			return value < limit
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be less than %v", limit),
			Code:    "less_than",
			Params: map[string]any{
				"field": field,
				"limit": limit,
			},
		},
	}
}

// Convenience aliases for the inclusive bounds.

func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}
