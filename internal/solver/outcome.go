// Package solver implements the puzzle solving engine: four strategies
// (decode cascade, sequence inference, dictionary search, bounded keyspace
// search) and the dispatcher that routes puzzle descriptors between them.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/HollowVault/keyhunt/internal/puzzle"
)

// Outcome is the uniform result shape every strategy produces. It is built
// once per solve call and never mutated after the engine returns it.
//
// Attempts is a declared cost counter, not a wall-clock measurement. It is a
// big integer because infeasible keyspace outcomes declare counts such as
// 2^66 without ever iterating.
type Outcome struct {
	Succeeded bool     `json:"succeeded"`
	Solution  string   `json:"solution,omitempty"`
	Attempts  *big.Int `json:"attempts"`
	Strategy  string   `json:"strategy"`
	ElapsedMS int64    `json:"elapsed_ms"`
}

// Validate enforces the outcome invariants: a solution is present if and only
// if the solve succeeded, and the attempt count is a non-negative integer.
func (o Outcome) Validate() error {
	if o.Succeeded && o.Solution == "" {
		return errors.New("succeeded outcome must carry a solution")
	}
	if !o.Succeeded && o.Solution != "" {
		return errors.New("failed outcome must not carry a solution")
	}
	if o.Attempts == nil {
		return errors.New("attempts is required")
	}
	if o.Attempts.Sign() < 0 {
		return fmt.Errorf("attempts must be non-negative, got %s", o.Attempts)
	}
	if o.Strategy == "" {
		return errors.New("strategy label is required")
	}
	if o.ElapsedMS < 0 {
		return fmt.Errorf("elapsed must be non-negative, got %d", o.ElapsedMS)
	}
	return nil
}

// Strategy is a single solving method. Implementations are stateless with
// respect to individual calls: given identical descriptors they return
// outcomes equal in everything but timing.
type Strategy interface {
	// Name returns the label identifying this strategy family.
	Name() string

	// Solve attempts the descriptor. Expected failures are reported inside
	// the outcome; the error return is reserved for conditions that should
	// abort the call outright.
	Solve(ctx context.Context, desc puzzle.Descriptor) (Outcome, error)
}

func success(strategy, solution string, attempts int64) Outcome {
	return Outcome{
		Succeeded: true,
		Solution:  solution,
		Attempts:  big.NewInt(attempts),
		Strategy:  strategy,
	}
}

func failure(strategy string, attempts *big.Int) Outcome {
	return Outcome{
		Succeeded: false,
		Attempts:  attempts,
		Strategy:  strategy,
	}
}
