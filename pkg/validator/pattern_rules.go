package validator

import (
	"fmt"
	"regexp"
)

// MatchesPattern validates a string against a precompiled regular expression.
// Callers that validate on every request should compile the pattern once and
// reuse it here.
func MatchesPattern(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match pattern %q", re.String()),
			Code:    "pattern",
			Params: map[string]any{
				"field":   field,
				"pattern": re.String(),
			},
		},
	}
}

// MatchesRegex is a convenience wrapper around MatchesPattern that compiles
// the pattern on each call. Panics on an invalid pattern.
func MatchesRegex(field, value, pattern string) Rule {
	return MatchesPattern(field, value, regexp.MustCompile(pattern))
}
