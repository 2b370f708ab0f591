// Package schema turns declarative record definitions into a decode and
// validate pipeline for HTTP request data.
//
// A Record names an ordered set of Field descriptors. Decoding a request
// against a record coerces every raw slot (path, query, header, cookie,
// body) to its declared kind, applies the field constraints and
// record-level checks, and either returns a complete Instance or an
// Errors value listing every failure at once. There is no partially
// valid outcome and no short-circuiting: a request with three bad fields
// reports all three.
//
// Defining a record:
//
//	var User = schema.NewRecord("User",
//		schema.String("name", schema.MaxLen(50)),
//		schema.Int("age", schema.Min(18), schema.Max(120)),
//		schema.String("city", schema.Default("Unknown"), schema.MaxLen(15)),
//		schema.String("email", schema.Optional(), schema.Email()),
//	)
//
// Decoding and using an instance:
//
//	in, err := User.Decode(raw)
//	if err != nil {
//		errs, _ := schema.AsErrors(err)
//		// errs lists every offending field with a reason and code
//	}
//	name := in.String("name")
//
// Records extend other records. The child inherits the parent's fields
// in order; redeclaring a field replaces the parent's descriptor
// entirely, constraints included:
//
//	var UserIn = User.Extend("UserIn",
//		schema.String("password", schema.MinLen(8)),
//	)
//
// Every field cell is three-state: absent, explicit null, or present
// with a value. The distinction drives partial updates, where a Patch
// decoded with DecodePatch carries only the keys the input named and
// Apply merges exactly those onto an existing instance.
//
// Instances encode to JSON in field declaration order, with absent
// fields omitted and nulls explicit, so responses are stable and
// diffable across requests.
package schema
