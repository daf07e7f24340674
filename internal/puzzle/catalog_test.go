package puzzle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if cat.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	for _, p := range cat.Puzzles() {
		if err := p.Validate(); err != nil {
			t.Errorf("puzzle %s invalid: %v", p.ID, err)
		}
	}
	if _, ok := cat.Get("cipher-001"); !ok {
		t.Error("expected cipher-001 in default catalog")
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	data := []byte(`puzzles:
  - id: test-1
    category: cipher-decode
    challenge: aGVsbG8=
  - id: test-2
    category: private-key-recovery
    challenge: stub
    bit_width: 8
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 puzzles, got %d", cat.Len())
	}
	p, ok := cat.Get("test-2")
	if !ok {
		t.Fatal("test-2 missing")
	}
	if p.BitWidth != 8 {
		t.Errorf("expected bit width 8, got %d", p.BitWidth)
	}
}

func TestLoadCatalogRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	data := []byte(`puzzles:
  - id: test-1
    category: cipher-decode
    challenge: aGVsbG8=
    difficulty: extreme
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestNewCatalogRejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog([]Descriptor{
		{ID: "dup", Category: CategoryCipherDecode, Challenge: "a"},
		{ID: "dup", Category: CategoryCipherDecode, Challenge: "b"},
	})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestCatalogPuzzlesIsACopy(t *testing.T) {
	cat, err := NewCatalog([]Descriptor{
		{ID: "p1", Category: CategoryCipherDecode, Challenge: "a"},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	list := cat.Puzzles()
	list[0].Challenge = "mutated"
	p, _ := cat.Get("p1")
	if p.Challenge != "a" {
		t.Error("catalog contents were mutated through Puzzles()")
	}
}
