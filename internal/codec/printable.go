package codec

// IsPrintable reports whether s is non-empty and every byte falls in the
// printable ASCII band (0x20-0x7E inclusive). It is the acceptance gate for
// decode cascades: a codec's output is only considered a plausible plaintext
// when it reads as printable text.
func IsPrintable(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}
