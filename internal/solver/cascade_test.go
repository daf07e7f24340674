package solver

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/HollowVault/keyhunt/internal/puzzle"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func cipherPuzzle(challenge string) puzzle.Descriptor {
	return puzzle.Descriptor{
		ID:        "test",
		Category:  puzzle.CategoryCipherDecode,
		Challenge: challenge,
	}
}

func TestCascadeBase64WinsFirst(t *testing.T) {
	cascade := NewDecodeCascade(nil, quietLogger())
	out, err := cascade.Solve(context.Background(), cipherPuzzle("UHJpdmF0ZUtleUZyYWdtZW50"))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !out.Succeeded {
		t.Fatal("expected success")
	}
	if out.Solution != "PrivateKeyFragment" {
		t.Errorf("expected PrivateKeyFragment, got %q", out.Solution)
	}
	if out.Strategy != "base64" {
		t.Errorf("expected base64 to win, got %q", out.Strategy)
	}
	if out.Attempts.Int64() != 1 {
		t.Errorf("expected 1 attempt, got %s", out.Attempts)
	}
}

func TestCascadeFallsThroughToHex(t *testing.T) {
	// Ten hex digits: not a multiple of four, so base64 rejects it first.
	cascade := NewDecodeCascade(nil, quietLogger())
	out, err := cascade.Solve(context.Background(), cipherPuzzle("48656c6c6f"))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !out.Succeeded {
		t.Fatal("expected success")
	}
	if out.Solution != "Hello" {
		t.Errorf("expected Hello, got %q", out.Solution)
	}
	if out.Strategy != "hex" {
		t.Errorf("expected hex to win, got %q", out.Strategy)
	}
	if out.Attempts.Int64() != 2 {
		t.Errorf("expected 2 attempts, got %s", out.Attempts)
	}
}

func TestCascadeUnprintableOutputIsANonMatch(t *testing.T) {
	// "deadbeef" is decodable as both base64 and hex, but neither output is
	// printable, so the cascade keeps going until rot13 accepts the raw text.
	cascade := NewDecodeCascade(nil, quietLogger())
	out, err := cascade.Solve(context.Background(), cipherPuzzle("deadbeef"))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !out.Succeeded {
		t.Fatal("expected success")
	}
	if out.Strategy != "rot13" {
		t.Errorf("expected rot13 to win, got %q", out.Strategy)
	}
	if out.Solution != "qrnqorrs" {
		t.Errorf("expected qrnqorrs, got %q", out.Solution)
	}
	if out.Attempts.Int64() != 3 {
		t.Errorf("expected 3 attempts, got %s", out.Attempts)
	}
}

func TestCascadeRot13(t *testing.T) {
	cascade := NewDecodeCascade(nil, quietLogger())
	out, err := cascade.Solve(context.Background(), cipherPuzzle("Gur xrl vf haqre gur oevqtr"))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !out.Succeeded {
		t.Fatal("expected success")
	}
	if out.Strategy != "rot13" {
		t.Errorf("expected rot13 to win, got %q", out.Strategy)
	}
	if out.Solution != "The key is under the bridge" {
		t.Errorf("unexpected solution %q", out.Solution)
	}
}

func TestCascadeExhaustion(t *testing.T) {
	cascade := NewDecodeCascade(nil, quietLogger())
	out, err := cascade.Solve(context.Background(), cipherPuzzle("\x01\x02"))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if out.Succeeded {
		t.Fatal("expected failure")
	}
	if out.Solution != "" {
		t.Errorf("failed outcome must not carry a solution, got %q", out.Solution)
	}
	if out.Attempts.Int64() != 5 {
		t.Errorf("expected all 5 codecs tried, got %s", out.Attempts)
	}
	if out.Strategy != "all decode methods exhausted" {
		t.Errorf("unexpected strategy label %q", out.Strategy)
	}
}

func TestCascadeIsDeterministic(t *testing.T) {
	cascade := NewDecodeCascade(nil, quietLogger())
	desc := cipherPuzzle("UHJpdmF0ZUtleUZyYWdtZW50")

	first, err := cascade.Solve(context.Background(), desc)
	if err != nil {
		t.Fatalf("first solve: %v", err)
	}
	second, err := cascade.Solve(context.Background(), desc)
	if err != nil {
		t.Fatalf("second solve: %v", err)
	}
	if first.Strategy != second.Strategy || first.Solution != second.Solution || first.Succeeded != second.Succeeded {
		t.Errorf("cascade not deterministic: %+v vs %+v", first, second)
	}
}

func TestCascadeHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cascade := NewDecodeCascade(nil, quietLogger())
	if _, err := cascade.Solve(ctx, cipherPuzzle("aGVsbG8=")); err == nil {
		t.Fatal("expected context error")
	}
}

func TestCascadeOutcomesValidate(t *testing.T) {
	cascade := NewDecodeCascade(nil, quietLogger())
	for _, challenge := range []string{"UHJpdmF0ZUtleUZyYWdtZW50", "48656c6c6f", "\x01\x02"} {
		out, err := cascade.Solve(context.Background(), cipherPuzzle(challenge))
		if err != nil {
			t.Fatalf("solve %q: %v", challenge, err)
		}
		out.ElapsedMS = 0
		if err := out.Validate(); err != nil {
			t.Errorf("outcome for %q invalid: %v", challenge, err)
		}
	}
}
