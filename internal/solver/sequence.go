package solver

import (
	"context"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"github.com/HollowVault/keyhunt/internal/codec"
	"github.com/HollowVault/keyhunt/internal/puzzle"
)

// Classifier labels reported by SequenceInference.
const (
	sequenceFibonacci = "fibonacci recurrence"
	sequencePrime     = "prime enumeration"
	sequenceBinary    = "binary decode"
	sequenceNoPattern = "no recognized pattern"
)

// sequenceClassifiers is the number of pattern checks consulted before the
// strategy gives up; exhaustion reports this as the attempt count.
const sequenceClassifiers = 3

// SequenceInference parses a comma-separated numeric challenge and
// extrapolates the next term. Classification is ordered: a Fibonacci-style
// recurrence wins over prime enumeration, which wins over raw binary octets.
//
// Parsing is deliberately lenient: tokens that fail to parse are dropped
// rather than aborting classification, so noisy human input still gets a
// verdict. Dropped tokens surface in debug logs so the leniency is visible.
type SequenceInference struct {
	logger *slog.Logger
}

// NewSequenceInference constructs the strategy.
func NewSequenceInference(logger *slog.Logger) *SequenceInference {
	if logger == nil {
		logger = slog.Default()
	}
	return &SequenceInference{logger: logger}
}

// Name implements Strategy.
func (s *SequenceInference) Name() string { return "sequence inference" }

// Solve implements Strategy.
func (s *SequenceInference) Solve(ctx context.Context, desc puzzle.Descriptor) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	terms, dropped := parseTerms(desc.Challenge)
	if dropped > 0 {
		s.logger.Debug("dropped unparseable sequence tokens", "puzzle", desc.ID, "dropped", dropped)
	}

	if isFibonacci(terms) {
		next := terms[len(terms)-1] + terms[len(terms)-2]
		return success(sequenceFibonacci, strconv.FormatInt(next, 10), 1), nil
	}

	if isPrimeRun(terms) {
		next := nextPrime(terms[len(terms)-1])
		return success(sequencePrime, strconv.FormatInt(next, 10), 1), nil
	}

	if isBinaryText(desc.Challenge) {
		decoded, err := (codec.BinaryCodec{}).Decode(ctx, desc.Challenge)
		if err == nil {
			return success(sequenceBinary, decoded, 1), nil
		}
		s.logger.Debug("binary classification failed to decode", "puzzle", desc.ID, "error", err)
	}

	return failure(sequenceNoPattern, big.NewInt(sequenceClassifiers)), nil
}

// parseTerms splits on commas and keeps only tokens that parse as integers.
func parseTerms(raw string) (terms []int64, dropped int) {
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		val, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			dropped++
			continue
		}
		terms = append(terms, val)
	}
	return terms, dropped
}

// isFibonacci reports whether every term after the first two is the sum of
// its two predecessors. Three terms are the minimum recognizable run.
func isFibonacci(terms []int64) bool {
	if len(terms) < 3 {
		return false
	}
	for i := 2; i < len(terms); i++ {
		if terms[i] != terms[i-1]+terms[i-2] {
			return false
		}
	}
	return true
}

// isPrimeRun reports whether the terms enumerate consecutive primes.
func isPrimeRun(terms []int64) bool {
	if len(terms) < 2 {
		return false
	}
	if !isPrime(terms[0]) {
		return false
	}
	for i := 1; i < len(terms); i++ {
		if terms[i] != nextPrime(terms[i-1]) {
			return false
		}
	}
	return true
}

// isBinaryText reports whether the raw challenge consists solely of binary
// digits and whitespace, with at least one digit present.
func isBinaryText(raw string) bool {
	seen := false
	for _, r := range raw {
		switch r {
		case '0', '1':
			seen = true
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return seen
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// nextPrime returns the smallest prime strictly greater than n.
func nextPrime(n int64) int64 {
	candidate := n + 1
	if candidate < 2 {
		return 2
	}
	for !isPrime(candidate) {
		candidate++
	}
	return candidate
}
