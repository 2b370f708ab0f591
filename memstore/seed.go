package memstore

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SeedYAML loads a YAML sequence of mappings into the store, keeping the
// ids the data declares. Every row must carry the id field; rows are
// validated through the store record like any other write. Later inserts
// continue numbering above the highest seeded id.
//
// Example data:
//
//	- id: 1
//	  name: Alice
//	  age: 30
//	- id: 2
//	  name: Bob
//	  age: 25
func (s *Store) SeedYAML(data []byte) error {
	var rows []map[string]any
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("memstore: parse seed data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range rows {
		rawID, ok := row[s.idField]
		if !ok {
			return fmt.Errorf("memstore: seed row %d: missing %q", i, s.idField)
		}
		id, ok := rawID.(int)
		if !ok {
			return fmt.Errorf("memstore: seed row %d: %q must be an integer", i, s.idField)
		}

		in, err := s.record.Make(row)
		if err != nil {
			return fmt.Errorf("memstore: seed row %d: %w", i, err)
		}
		s.put(id, in)
	}
	return nil
}
