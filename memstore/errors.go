package memstore

import "errors"

// ErrNotFound is returned when no instance carries the requested id.
// Handlers usually translate it to a 404.
var ErrNotFound = errors.New("record not found")
