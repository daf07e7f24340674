// Package report persists solve outcomes as schema-versioned JSON Lines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/HollowVault/keyhunt/internal/puzzle"
	"github.com/HollowVault/keyhunt/internal/solver"
)

// SchemaVersion captures the canonical record schema version persisted to disk.
const SchemaVersion = "0.1"

// Timestamp enforces RFC3339 timestamps when encoding records to disk.
type Timestamp time.Time

// NewTimestamp normalises the input time before persisting it.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp(t.UTC().Truncate(time.Second))
}

// Time exposes the underlying time value.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero reports whether the timestamp has been initialised.
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// MarshalJSON renders the timestamp using time.RFC3339. Zero values encode as
// an empty string so Validate can flag missing timestamps explicitly.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(tt.UTC().Format(time.RFC3339))
}

// UnmarshalJSON enforces RFC3339 timestamps when reading persisted records.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid ts timestamp: %w", err)
	}
	*t = NewTimestamp(parsed)
	return nil
}

// NewID generates a ULID suitable for persisting as a record identifier.
func NewID() string {
	return ulid.Make().String()
}

// Record is one persisted solve outcome, pairing the descriptor identity
// with the engine's result.
type Record struct {
	Version   string          `json:"version"`
	ID        string          `json:"id"`
	PuzzleID  string          `json:"puzzle_id"`
	Category  puzzle.Category `json:"category"`
	Succeeded bool            `json:"succeeded"`
	Solution  string          `json:"solution,omitempty"`
	Strategy  string          `json:"strategy"`
	Attempts  *big.Int        `json:"attempts"`
	ElapsedMS int64           `json:"elapsed_ms"`
	SolvedAt  Timestamp       `json:"ts"`
}

// NewRecord stamps a fresh record from a descriptor and its outcome.
func NewRecord(desc puzzle.Descriptor, out solver.Outcome, at time.Time) Record {
	return Record{
		Version:   SchemaVersion,
		ID:        NewID(),
		PuzzleID:  desc.ID,
		Category:  desc.Category,
		Succeeded: out.Succeeded,
		Solution:  out.Solution,
		Strategy:  out.Strategy,
		Attempts:  out.Attempts,
		ElapsedMS: out.ElapsedMS,
		SolvedAt:  NewTimestamp(at),
	}
}

// Validate performs sanity checks before a record reaches disk.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Version) == "" {
		return errors.New("version is required")
	}
	if strings.TrimSpace(r.Version) != SchemaVersion {
		return fmt.Errorf("unsupported version %q", r.Version)
	}
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("record id is required")
	}
	if _, err := ulid.ParseStrict(strings.TrimSpace(r.ID)); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	if strings.TrimSpace(r.PuzzleID) == "" {
		return errors.New("puzzle id is required")
	}
	if err := r.Category.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Strategy) == "" {
		return errors.New("strategy is required")
	}
	if r.Attempts == nil || r.Attempts.Sign() < 0 {
		return errors.New("attempts must be a non-negative integer")
	}
	if r.Succeeded && r.Solution == "" {
		return errors.New("succeeded record must carry a solution")
	}
	if !r.Succeeded && r.Solution != "" {
		return errors.New("failed record must not carry a solution")
	}
	if r.SolvedAt.IsZero() {
		return errors.New("ts is required")
	}
	return nil
}
