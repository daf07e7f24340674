package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/HollowVault/keyhunt/internal/codec"
	"github.com/HollowVault/keyhunt/internal/puzzle"
)

// DefaultXORKey is XORed against hex challenges as the cascade's last resort.
var DefaultXORKey = []byte("satoshi")

// DecodeCascade tries each codec in a fixed priority order and accepts the
// first non-empty output that reads as printable ASCII. The order is a
// designed invariant, not an accident of registration: earlier codecs win
// ties, so base64 beats hex beats rot13 beats binary beats xor.
type DecodeCascade struct {
	codecs []codec.Codec
	logger *slog.Logger
}

// NewDecodeCascade builds the cascade with the canonical codec order. The
// xorKey parameterises the final fallback codec; pass nil for DefaultXORKey.
func NewDecodeCascade(xorKey []byte, logger *slog.Logger) *DecodeCascade {
	if len(xorKey) == 0 {
		xorKey = DefaultXORKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DecodeCascade{
		codecs: []codec.Codec{
			codec.Base64Codec{},
			codec.HexCodec{},
			codec.ROT13Codec{},
			codec.BinaryCodec{},
			codec.NewXORCodec(xorKey),
		},
		logger: logger,
	}
}

// Name implements Strategy.
func (c *DecodeCascade) Name() string { return "decode cascade" }

// Solve implements Strategy. A codec reporting malformed input is a
// non-match and the cascade moves on; only context cancellation or an
// unexpected codec misconfiguration aborts the call.
func (c *DecodeCascade) Solve(ctx context.Context, desc puzzle.Descriptor) (Outcome, error) {
	attempts := 0
	for _, cd := range c.codecs {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		attempts++
		decoded, err := cd.Decode(ctx, desc.Challenge)
		if err != nil {
			if errors.Is(err, codec.ErrMalformedInput) {
				c.logger.Debug("codec rejected challenge", "codec", cd.Name(), "puzzle", desc.ID)
				continue
			}
			if errors.Is(err, codec.ErrInvalidConfig) {
				// A misconfigured codec fails the strategy but never crashes
				// the solve call.
				c.logger.Error("codec misconfigured", "codec", cd.Name(), "error", err)
				return failure(fmt.Sprintf("%s misconfigured", cd.Name()), big.NewInt(int64(attempts))), nil
			}
			return Outcome{}, fmt.Errorf("codec %s: %w", cd.Name(), err)
		}
		if codec.IsPrintable(decoded) {
			out := success(cd.Name(), decoded, int64(attempts))
			return out, nil
		}
	}
	return failure("all decode methods exhausted", big.NewInt(int64(attempts))), nil
}
