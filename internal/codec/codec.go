// Package codec provides the pure decoding transforms used by the puzzle
// solving engine: hex, base64, ROT13, binary strings, and XOR with a
// repeating key.
package codec

import (
	"context"
	"errors"
)

// ErrMalformedInput reports input a codec could not parse. Callers running a
// decode cascade treat it as a non-match and move on to the next codec.
var ErrMalformedInput = errors.New("malformed input")

// ErrInvalidConfig reports a codec that was constructed with unusable
// parameters, such as an empty XOR key. Unlike ErrMalformedInput it signals a
// caller bug rather than bad puzzle data.
var ErrInvalidConfig = errors.New("invalid codec configuration")

// Codec is a single pure decoding transform. Implementations are stateless
// and safe for concurrent use.
type Codec interface {
	// Name returns the unique identifier for this codec.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Decode applies the transform to the input text. Errors wrap
	// ErrMalformedInput or ErrInvalidConfig.
	Decode(ctx context.Context, input string) (string, error)
}
