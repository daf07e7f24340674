// Package codec provides the decoding operations used to peel obfuscation
// layers off puzzle challenge strings.
//
// # Overview
//
// Every operation implements the Codec interface: it takes a candidate
// string and either produces the decoded plaintext or reports that the
// input does not match its format. Supported operations:
//   - base64 - standard Base64
//   - hex - hexadecimal, tolerant of 0x/\x prefixes and separators
//   - rot13 - ROT13 letter rotation
//   - binary - whitespace-separated 8-bit binary groups
//   - xor - single repeating-key XOR over hex input
//
// # Quick Start
//
// Look up a registered codec and decode with it:
//
//	cd, _ := codec.Get("base64")
//	out, err := cd.Decode(ctx, "SGVsbG8sIFdvcmxkIQ==")
//	// out: "Hello, World!"
//
// Decoding failures that mean "this input is not in my format" are
// reported as ErrMalformedInput so callers can distinguish a non-match
// from a genuine fault:
//
//	if errors.Is(err, codec.ErrMalformedInput) {
//	    // try the next codec
//	}
//
// Use IsPrintable to judge whether a decode produced readable text:
//
//	if codec.IsPrintable(out) {
//	    // plausible plaintext
//	}
//
// # Thread Safety
//
// The registry is thread-safe and can be accessed concurrently.
// Individual codecs are stateless and safe for concurrent use.
package codec
