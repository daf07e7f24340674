package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCatalogListsEmbeddedPuzzles(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runCatalog(nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"ID", "CATEGORY", "cipher-001", "key-001", "private-key-recovery"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in catalog listing, got:\n%s", want, out)
		}
	}
}

func TestRunCatalogCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	body := `puzzles:
  - id: custom-001
    title: Custom riddle
    category: cipher-decode
    challenge: fcgvba
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := runCatalog([]string{"--catalog", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "custom-001") {
		t.Errorf("expected custom puzzle id, got:\n%s", stdout.String())
	}
}

func TestRunCatalogMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runCatalog([]string{"--catalog", filepath.Join(t.TempDir(), "nope.yml")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}
