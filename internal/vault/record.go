// Package vault implements the in-memory model at the heart of the tool:
// file records and the insertion-ordered store that holds them, keyed by
// (name, extension).
package vault

import "fmt"

// Record is one stored file: its name, extension, and raw content.
type Record struct {
	Name      string `msgpack:"name"`
	Extension string `msgpack:"extension"`
	Content   []byte `msgpack:"content"`
}

// NewRecord builds a Record from an already-derived name/extension pair and
// content read by the caller. No validation happens here; the command layer
// rejects paths without a stem or an extension before a Record is built.
func NewRecord(name, extension string, content []byte) Record {
	return Record{
		Name:      name,
		Extension: extension,
		Content:   content,
	}
}

// Key identifies a Record within a Store.
type Key struct {
	Name      string
	Extension string
}

// Key returns the record's identity within a store.
func (r Record) Key() Key {
	return Key{Name: r.Name, Extension: r.Extension}
}

// Describe renders a one-line human-readable summary of the record.
func (r Record) Describe() string {
	return fmt.Sprintf("%s.%s [%d bytes]", r.Name, r.Extension, len(r.Content))
}
