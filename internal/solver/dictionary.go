package solver

import (
	"context"
	"math/big"

	"github.com/HollowVault/keyhunt/internal/puzzle"
)

// DefaultWordlist is the ordered candidate list used when no custom list is
// supplied. Order matters: attempts are counted per candidate consumed.
var DefaultWordlist = []string{
	"password",
	"123456",
	"letmein",
	"qwerty",
	"bitcoin",
	"satoshi",
	"hunter2",
	"secret",
	"genesis",
	"hodl",
}

// DictionarySearch iterates a fixed ordered candidate list against a known
// target, short-circuiting on the first exact case-sensitive match.
//
// This models a dictionary/rainbow-table preimage lookup: it requires the
// true answer to already be recorded on the descriptor and present in the
// candidate list. It does not invert a one-way function, and that limitation
// is intentional.
type DictionarySearch struct {
	candidates []string
}

// NewDictionarySearch builds the strategy around the given candidate list;
// nil selects DefaultWordlist.
func NewDictionarySearch(candidates []string) *DictionarySearch {
	if candidates == nil {
		candidates = DefaultWordlist
	}
	cloned := make([]string, len(candidates))
	copy(cloned, candidates)
	return &DictionarySearch{candidates: cloned}
}

// Name implements Strategy.
func (d *DictionarySearch) Name() string { return "dictionary search" }

// Solve implements Strategy.
func (d *DictionarySearch) Solve(ctx context.Context, desc puzzle.Descriptor) (Outcome, error) {
	if desc.KnownSolution == "" {
		return failure("dictionary search requires a known target", big.NewInt(0)), nil
	}

	attempts := 0
	for _, candidate := range d.candidates {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		attempts++
		if candidate == desc.KnownSolution {
			return success(d.Name(), candidate, int64(attempts)), nil
		}
	}
	return failure("dictionary exhausted", big.NewInt(int64(attempts))), nil
}
