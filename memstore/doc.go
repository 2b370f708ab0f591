// Package memstore provides an in-memory instance store for record-backed
// APIs: prototypes, examples, and tests that want real CRUD semantics
// without a database.
//
// A store binds a record to an integer id field. Writes validate through
// the record, inserts assign sequential ids, updates merge sparse
// patches, and listings keep insertion order:
//
//	users := memstore.New(userRecord, "id")
//	created, err := users.Insert(in)       // id assigned
//	updated, err := users.Update(7, patch) // sparse merge
//	all := users.List()                    // insertion order
//
// Stores can be preloaded from YAML fixtures with SeedYAML.
package memstore
