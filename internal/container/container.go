// Package container persists a vault store as a single MessagePack blob on
// disk. Every load decodes the whole container and every save rewrites it;
// there is no index, journal, or partial update.
package container

import (
	"errors"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vaultfile/vault/internal/vault"
)

// DefaultName is the container file created in the working directory.
const DefaultName = "vault.vault"

// ErrMissing indicates no container exists at the given path.
var ErrMissing = errors.New("container: no vault found")

// ErrCorrupt indicates the container exists but cannot be decoded into a
// valid store.
var ErrCorrupt = errors.New("container: vault is invalid")

// document is the on-disk shape of a serialized store.
type document struct {
	Files []vault.Record `msgpack:"files"`
}

// Load reads and decodes the container at path, returning the store exactly
// as persisted, insertion order included.
func Load(path string) (*vault.Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissing
		}
		return nil, err
	}

	var doc document
	if err := msgpack.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	// Rebuild through Add so a tampered container cannot smuggle in
	// duplicate keys.
	store := vault.NewStore()
	for _, rec := range doc.Files {
		if err := store.Add(rec, false); err != nil {
			return nil, fmt.Errorf("%w: duplicate entry %s.%s", ErrCorrupt, rec.Name, rec.Extension)
		}
	}
	return store, nil
}

// Save serializes the whole store and overwrites the container at path.
// The write is not crash-safe; an interrupted save may leave the container
// truncated.
func Save(store *vault.Store, path string) error {
	raw, err := msgpack.Marshal(document{Files: store.Records()})
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// Exists reports whether a container is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
