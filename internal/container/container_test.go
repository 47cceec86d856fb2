package container

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vaultfile/vault/internal/vault"
)

func containerPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), DefaultName)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := containerPath(t)

	store := vault.NewStore()
	records := []vault.Record{
		vault.NewRecord("hello", "txt", []byte("welcome")),
		vault.NewRecord("report", "pdf", []byte{0x25, 0x50, 0x44, 0x46}),
		vault.NewRecord("empty", "log", nil),
	}
	for _, rec := range records {
		if err := store.Add(rec, false); err != nil {
			t.Fatalf("Add %s failed: %v", rec.Name, err)
		}
	}

	if err := Save(store, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := loaded.Records()
	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i, want := range records {
		if got[i].Name != want.Name || got[i].Extension != want.Extension {
			t.Fatalf("record %d: expected %s.%s, got %s.%s", i, want.Name, want.Extension, got[i].Name, got[i].Extension)
		}
		if !bytes.Equal(got[i].Content, want.Content) {
			t.Fatalf("record %d: content mismatch", i)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	path := containerPath(t)

	if _, err := Load(path); !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := containerPath(t)
	if err := os.WriteFile(path, []byte("this is not msgpack"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestLoadRejectsDuplicateEntries(t *testing.T) {
	path := containerPath(t)

	doc := document{Files: []vault.Record{
		vault.NewRecord("a", "txt", []byte("one")),
		vault.NewRecord("a", "txt", []byte("two")),
	}}
	raw, err := msgpack.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt for duplicate keys, got %v", err)
	}
}

func TestSaveOverwritesPreviousContainer(t *testing.T) {
	path := containerPath(t)

	first := vault.NewStore()
	if err := first.Add(vault.NewRecord("a", "txt", []byte("a")), false); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := Save(first, path); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := vault.NewStore()
	if err := second.Add(vault.NewRecord("b", "md", []byte("b")), false); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := Save(second, path); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Len() != 1 || !loaded.Contains("b", "md") {
		t.Fatalf("expected only the second store's records, got %d records", loaded.Len())
	}
}

func TestExists(t *testing.T) {
	path := containerPath(t)
	if Exists(path) {
		t.Fatalf("Exists should be false before Save")
	}

	if err := Save(vault.NewStore(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !Exists(path) {
		t.Fatalf("Exists should be true after Save")
	}
}
