package memstore

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/apikit/schema"
)

// Store is an in-memory collection of record instances keyed by an
// integer id field. It validates everything it stores through its
// record, assigns ids on insert, and keeps insertion order for listing.
// All methods are safe for concurrent use.
//
// Instances are immutable, so the store hands them out without copying.
type Store struct {
	record  *schema.Record
	idField string

	mu     sync.RWMutex
	items  map[int]*schema.Instance
	order  []int
	nextID int
}

// New creates a store for the given record, keyed by the named integer
// field. It panics when the record does not declare the field as an
// integer, so a miswired store fails at startup.
//
// Example:
//
//	var userRecord = schema.NewRecord("user",
//		schema.Int("id"),
//		schema.String("name", schema.MinLen(1)),
//		schema.Int("age", schema.Min(0)),
//	)
//
//	users := memstore.New(userRecord, "id")
func New(record *schema.Record, idField string) *Store {
	if record == nil {
		panic("memstore: record must not be nil")
	}
	f, ok := record.Field(idField)
	if !ok || f.Kind() != schema.KindInt {
		panic(fmt.Sprintf("memstore: record %q has no integer field %q", record.Name(), idField))
	}

	return &Store{
		record:  record,
		idField: idField,
		items:   make(map[int]*schema.Instance),
		nextID:  1,
	}
}

// Record returns the record the store validates against.
func (s *Store) Record() *schema.Record { return s.record }

// Get returns the instance with the given id or ErrNotFound.
func (s *Store) Get(id int) (*schema.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	in, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return in, nil
}

// List returns all instances in insertion order.
func (s *Store) List() []*schema.Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*schema.Instance, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Len returns the number of stored instances.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Insert validates the given instance's values against the store record,
// assigns the next free id, and stores the result. Any id on the way in
// is ignored. The instance may come from a different record, typically a
// request record without the id field; the store record's defaults fill
// whatever it does not carry.
func (s *Store) Insert(in *schema.Instance) (*schema.Instance, error) {
	values := in.Values()

	s.mu.Lock()
	defer s.mu.Unlock()

	values[s.idField] = s.nextID
	stored, err := s.record.Make(values)
	if err != nil {
		return nil, err
	}

	s.put(s.nextID, stored)
	s.nextID++
	return stored, nil
}

// Replace swaps the instance with the given id for a new one built from
// the given values, keeping the id. Returns ErrNotFound for unknown ids.
func (s *Store) Replace(id int, in *schema.Instance) (*schema.Instance, error) {
	values := in.Values()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return nil, ErrNotFound
	}

	values[s.idField] = id
	stored, err := s.record.Make(values)
	if err != nil {
		return nil, err
	}

	s.items[id] = stored
	return stored, nil
}

// Update applies a sparse patch to the stored instance and keeps the
// merged result when it passes the record's checks. Fields the patch
// does not mention keep their stored values; the id cannot change.
func (s *Store) Update(id int, patch *schema.Patch) (*schema.Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	merged, err := patch.Apply(existing)
	if err != nil {
		return nil, err
	}

	s.items[id] = merged
	return merged, nil
}

// Delete removes the instance with the given id or returns ErrNotFound.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}

	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes every instance. Assigned ids are not reused.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int]*schema.Instance)
	s.order = nil
}

// put stores under an explicit id and keeps the id counter ahead of it.
// Callers hold the write lock.
func (s *Store) put(id int, in *schema.Instance) {
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = in
	if id >= s.nextID {
		s.nextID = id + 1
	}
}
