package validator

import "fmt"

// OneOf validates that a value is one of the allowed options. This backs
// enum-style fields where the option set is fixed at definition time.
func OneOf[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, option := range allowed {
				if value == option {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowed),
			Code:    "enum",
			Params: map[string]any{
				"field":   field,
				"allowed": allowed,
			},
		},
	}
}

// NoneOf validates that a value is not one of the forbidden options.
func NoneOf[T comparable](field string, value T, forbidden []T) Rule {
	return Rule{
		Check: func() bool {
			for _, option := range forbidden {
				if value == option {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not be one of: %v", forbidden),
			Code:    "not_enum",
			Params: map[string]any{
				"field":     field,
				"forbidden": forbidden,
			},
		},
	}
}
