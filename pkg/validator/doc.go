// Package validator provides small composable rules for checking request
// field values, with failures aggregated instead of short-circuited.
//
// Every helper constructs a Rule: a boolean Check paired with the
// ValidationError to report when the check fails. Rules are evaluated with
// Apply, which collects all failures into a ValidationErrors slice that
// implements the error interface, so a single error return can describe
// every bad field in a request.
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.MinLenString("password", password, 8),
//	    validator.MinNum("age", age, 18),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // verrs.Get(field) -> messages for that field
//	    }
//	}
//
// Each ValidationError carries a stable machine-readable Code (such as
// "min_length" or "greater_than") plus the rule parameters, so transports
// can expose structured detail alongside the human-readable message.
//
// The package holds no state; rules close over the values they check and
// are safe for concurrent use.
package validator
