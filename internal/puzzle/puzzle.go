// Package puzzle defines the immutable puzzle descriptors consumed by the
// solving engine and the catalog they are loaded from.
package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Category routes a descriptor to a solving strategy. The set is closed: the
// engine switches over it exhaustively and an unknown value produces a
// structured failure, never a crash.
type Category string

const (
	CategoryBitcoinAddress     Category = "bitcoin-address"
	CategoryHashPreimage       Category = "hash-preimage"
	CategoryCipherDecode       Category = "cipher-decode"
	CategoryPatternAnalysis    Category = "pattern-analysis"
	CategoryPrivateKeyRecovery Category = "private-key-recovery"
)

var categorySet = map[Category]struct{}{
	CategoryBitcoinAddress:     {},
	CategoryHashPreimage:       {},
	CategoryCipherDecode:       {},
	CategoryPatternAnalysis:    {},
	CategoryPrivateKeyRecovery: {},
}

// ParseCategory normalises and validates a category string.
func ParseCategory(raw string) (Category, error) {
	parsed := Category(strings.ToLower(strings.TrimSpace(raw)))
	if err := parsed.Validate(); err != nil {
		return "", err
	}
	return parsed, nil
}

// Validate reports whether the category is one of the closed set.
func (c Category) Validate() error {
	if _, ok := categorySet[c]; !ok {
		return fmt.Errorf("invalid category: %q", c)
	}
	return nil
}

// KeyspaceBased reports whether the category is solved by bounded keyspace
// search and therefore requires a declared bit width.
func (c Category) KeyspaceBased() bool {
	return c == CategoryBitcoinAddress || c == CategoryPrivateKeyRecovery
}

// Descriptor is an immutable puzzle definition. Strategies never mutate it;
// the engine treats it as a value for the lifetime of one solve call.
type Descriptor struct {
	ID            string   `yaml:"id" json:"id"`
	Title         string   `yaml:"title,omitempty" json:"title,omitempty"`
	Category      Category `yaml:"category" json:"category"`
	Challenge     string   `yaml:"challenge" json:"challenge"`
	BitWidth      int      `yaml:"bit_width,omitempty" json:"bit_width,omitempty"`
	KnownSolution string   `yaml:"known_solution,omitempty" json:"known_solution,omitempty"`
	Reward        string   `yaml:"reward,omitempty" json:"reward,omitempty"`
}

// Validate performs sanity checks on a catalog entry.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("puzzle id is required")
	}
	if err := d.Category.Validate(); err != nil {
		return err
	}
	if d.BitWidth < 0 {
		return fmt.Errorf("bit width must be non-negative, got %d", d.BitWidth)
	}
	if d.Category.KeyspaceBased() {
		if d.BitWidth == 0 {
			return fmt.Errorf("category %s requires a bit width", d.Category)
		}
	} else if strings.TrimSpace(d.Challenge) == "" {
		return fmt.Errorf("category %s requires a challenge payload", d.Category)
	}
	return nil
}
