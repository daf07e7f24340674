package codec

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Base64Codec decodes standard-alphabet Base64.
type Base64Codec struct{}

func (Base64Codec) Name() string        { return "base64" }
func (Base64Codec) Description() string { return "Decode standard Base64 text" }

func (Base64Codec) Decode(ctx context.Context, input string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return "", fmt.Errorf("%w: base64: %v", ErrMalformedInput, err)
	}
	return string(decoded), nil
}

// HexCodec decodes hexadecimal byte pairs to their character values. Common
// prefixes and separators are stripped before validation.
type HexCodec struct{}

func (HexCodec) Name() string        { return "hex" }
func (HexCodec) Description() string { return "Decode hexadecimal byte pairs to ASCII" }

func (HexCodec) Decode(ctx context.Context, input string) (string, error) {
	cleaned := stripHex(input)
	if len(cleaned)%2 != 0 {
		return "", fmt.Errorf("%w: hex: odd length %d", ErrMalformedInput, len(cleaned))
	}
	decoded, err := hex.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: hex: %v", ErrMalformedInput, err)
	}
	return string(decoded), nil
}

func stripHex(input string) string {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimPrefix(cleaned, "0x")
	cleaned = strings.TrimPrefix(cleaned, "\\x")
	for _, sep := range []string{" ", "\t", "\n", ":", "-"} {
		cleaned = strings.ReplaceAll(cleaned, sep, "")
	}
	return cleaned
}

// ROT13Codec shifts ASCII letters by 13 within their case alphabet.
// Non-letters pass through unchanged; the transform never fails and is its
// own inverse.
type ROT13Codec struct{}

func (ROT13Codec) Name() string        { return "rot13" }
func (ROT13Codec) Description() string { return "Rotate ASCII letters by 13 positions" }

func (ROT13Codec) Decode(ctx context.Context, input string) (string, error) {
	out := []byte(input)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + (c-'a'+13)%26
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + (c-'A'+13)%26
		}
	}
	return string(out), nil
}

// BinaryCodec decodes whitespace-separated 8-bit binary groups.
type BinaryCodec struct{}

func (BinaryCodec) Name() string        { return "binary" }
func (BinaryCodec) Description() string { return "Decode 8-bit binary groups to ASCII" }

func (BinaryCodec) Decode(ctx context.Context, input string) (string, error) {
	groups := strings.Fields(input)
	if len(groups) == 0 {
		return "", fmt.Errorf("%w: binary: empty input", ErrMalformedInput)
	}
	out := make([]byte, 0, len(groups))
	for i, group := range groups {
		if len(group) != 8 {
			return "", fmt.Errorf("%w: binary: group %d is %d bits, want 8", ErrMalformedInput, i, len(group))
		}
		val, err := strconv.ParseUint(group, 2, 8)
		if err != nil {
			return "", fmt.Errorf("%w: binary: group %d: %v", ErrMalformedInput, i, err)
		}
		out = append(out, byte(val))
	}
	return string(out), nil
}

// XORCodec interprets its input as hex byte pairs and XORs each decoded byte
// with a cyclically repeating key.
type XORCodec struct {
	Key []byte
}

// NewXORCodec constructs an XOR codec with the given repeating key.
func NewXORCodec(key []byte) XORCodec {
	return XORCodec{Key: key}
}

func (XORCodec) Name() string        { return "xor" }
func (XORCodec) Description() string { return "XOR hex byte pairs with a repeating key" }

func (x XORCodec) Decode(ctx context.Context, input string) (string, error) {
	if len(x.Key) == 0 {
		return "", fmt.Errorf("%w: xor key is empty", ErrInvalidConfig)
	}
	cleaned := stripHex(input)
	if len(cleaned)%2 != 0 {
		return "", fmt.Errorf("%w: xor: odd hex length %d", ErrMalformedInput, len(cleaned))
	}
	decoded, err := hex.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: xor: %v", ErrMalformedInput, err)
	}
	for i := range decoded {
		decoded[i] ^= x.Key[i%len(x.Key)]
	}
	return string(decoded), nil
}
