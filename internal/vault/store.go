package vault

// Store is an insertion-ordered collection of Records with unique
// (name, extension) keys. Lookups are linear scans; a vault holds a
// personal file set, not a production dataset.
type Store struct {
	records []Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Contains reports whether a record with the exact (name, extension) key
// is present.
func (s *Store) Contains(name, extension string) bool {
	for _, r := range s.records {
		if r.Name == name && r.Extension == extension {
			return true
		}
	}
	return false
}

// Add appends rec to the store. If a record with the same key already
// exists, Add fails with ErrDuplicateKey unless overwrite is set, in which
// case the existing record is removed first and rec is appended at the end.
// An overwritten record therefore loses its original position.
func (s *Store) Add(rec Record, overwrite bool) error {
	if s.Contains(rec.Name, rec.Extension) {
		if !overwrite {
			return ErrDuplicateKey
		}
		if err := s.Delete(rec.Name, rec.Extension); err != nil {
			return err
		}
	}
	s.records = append(s.records, rec)
	return nil
}

// Get returns the record with the given key, or ErrNotFound.
func (s *Store) Get(name, extension string) (*Record, error) {
	for i := range s.records {
		if s.records[i].Name == name && s.records[i].Extension == extension {
			return &s.records[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the record with the given key, or fails with ErrNotFound
// leaving the store untouched. A record is removed only when both its name
// and its extension match: deleting a.txt must not touch a.md.
func (s *Store) Delete(name, extension string) error {
	if !s.Contains(name, extension) {
		return ErrNotFound
	}

	kept := s.records[:0]
	for _, r := range s.records {
		if r.Name == name && r.Extension == extension {
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return nil
}

// Records returns all records in insertion order. The slice is shared with
// the store; callers treat it as read-only.
func (s *Store) Records() []Record {
	return s.records
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}
