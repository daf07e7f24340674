package puzzle

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yml
var defaultCatalogYAML []byte

// Catalog is an immutable ordered collection of puzzle descriptors. It is
// built once by the caller and passed into whatever drives the engine; there
// is no process-wide catalog singleton.
type Catalog struct {
	puzzles []Descriptor
	byID    map[string]int
}

// NewCatalog validates the descriptors and builds an indexed catalog.
// Duplicate IDs are rejected.
func NewCatalog(puzzles []Descriptor) (*Catalog, error) {
	byID := make(map[string]int, len(puzzles))
	for i, p := range puzzles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("puzzle %d (%s): %w", i, p.ID, err)
		}
		id := strings.TrimSpace(p.ID)
		if _, exists := byID[id]; exists {
			return nil, fmt.Errorf("duplicate puzzle id %q", id)
		}
		byID[id] = i
	}
	cloned := make([]Descriptor, len(puzzles))
	copy(cloned, puzzles)
	return &Catalog{puzzles: cloned, byID: byID}, nil
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads a YAML catalog from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	cat, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cat, nil
}

func parseCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Puzzles []Descriptor `yaml:"puzzles"`
	}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(doc.Puzzles)
}

// Get returns the descriptor with the given id.
func (c *Catalog) Get(id string) (Descriptor, bool) {
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Descriptor{}, false
	}
	return c.puzzles[idx], true
}

// Puzzles returns a copy of the descriptors in catalog order.
func (c *Catalog) Puzzles() []Descriptor {
	out := make([]Descriptor, len(c.puzzles))
	copy(out, c.puzzles)
	return out
}

// Len returns the number of puzzles in the catalog.
func (c *Catalog) Len() int {
	return len(c.puzzles)
}
