package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Reason classifies why a field failed decoding.
type Reason string

const (
	// ReasonTypeMismatch means the raw value could not be coerced to the
	// field's declared kind (including an explicit null on a field that
	// does not permit one).
	ReasonTypeMismatch Reason = "type_mismatch"

	// ReasonConstraintViolation means the value decoded fine but failed
	// one of the field's declared constraints or a record-level check.
	ReasonConstraintViolation Reason = "constraint_violation"

	// ReasonMissing means a required field was absent from the input.
	ReasonMissing Reason = "missing"
)

// FieldError describes a single failure against a named field. Field uses
// dotted paths for nested records ("address.city") and bracketed indexes
// for list elements ("tags[2]"). Code is a stable machine-readable
// identifier of the failed rule ("required", "min_length", "integer").
type FieldError struct {
	Field   string
	Reason  Reason
	Code    string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors aggregates every failure from one decode pass. A decode either
// produces a complete instance or an Errors value listing all offending
// fields; it never produces both.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "invalid input"
	}

	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Has reports whether any failure names the given field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Get returns all failure messages recorded for the given field.
func (e Errors) Get(field string) []string {
	var messages []string
	for _, fe := range e {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

// Fields returns the offending field names in first-seen order.
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, fe := range e {
		if !seen[fe.Field] {
			fields = append(fields, fe.Field)
			seen[fe.Field] = true
		}
	}
	return fields
}

// ByField groups failure messages by field name, the shape rendered into
// the details object of an unprocessable entity response.
func (e Errors) ByField() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// AsErrors unwraps an Errors aggregate from an error chain.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}

	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}

	return nil, false
}

// Violation builds the FieldError a record-level check returns when a
// cross-field rule fails.
//
// Example:
//
//	schema.NewRecord("Signup",
//		schema.String("password", schema.MinLen(8)),
//		schema.String("password_confirm"),
//	).WithCheck(func(in *schema.Instance) error {
//		if in.String("password") != in.String("password_confirm") {
//			return schema.Violation("password_confirm", "does not match password")
//		}
//		return nil
//	})
func Violation(field, message string) FieldError {
	return FieldError{
		Field:   field,
		Reason:  ReasonConstraintViolation,
		Code:    "record_check",
		Message: message,
	}
}
