package memory

import (
	"path/filepath"
	"testing"
)

func TestStore_SaveAndLookup(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, found := store.Lookup("Hello"); found {
		t.Error("expected no entry in fresh store")
	}

	if err := store.Save("Hello", "안녕하세요"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	translated, found := store.Lookup("Hello")
	if !found {
		t.Fatal("expected entry after Save")
	}
	if translated != "안녕하세요" {
		t.Errorf("Lookup = %q, want 안녕하세요", translated)
	}
}

func TestStore_Replace(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "memory.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if err := store.Save("World", "월드"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("World", "세계"); err != nil {
		t.Fatal(err)
	}

	translated, _ := store.Lookup("World")
	if translated != "세계" {
		t.Errorf("Lookup after replace = %q, want 세계", translated)
	}

	n, err := store.Len()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Save("Hello", "안녕하세요"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	translated, found := reopened.Lookup("Hello")
	if !found || translated != "안녕하세요" {
		t.Errorf("Lookup after reopen = %q, %v; want 안녕하세요, true", translated, found)
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "memory.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Close()
}
