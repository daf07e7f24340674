package solver

import (
	"encoding/json"
	"math/big"
	"testing"
)

func TestOutcomeValidate(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		wantErr bool
	}{
		{
			"valid success",
			Outcome{Succeeded: true, Solution: "x", Attempts: big.NewInt(1), Strategy: "base64"},
			false,
		},
		{
			"valid failure",
			Outcome{Attempts: big.NewInt(5), Strategy: "all decode methods exhausted"},
			false,
		},
		{
			"success without solution",
			Outcome{Succeeded: true, Attempts: big.NewInt(1), Strategy: "base64"},
			true,
		},
		{
			"failure with solution",
			Outcome{Solution: "leak", Attempts: big.NewInt(1), Strategy: "base64"},
			true,
		},
		{
			"nil attempts",
			Outcome{Succeeded: true, Solution: "x", Strategy: "base64"},
			true,
		},
		{
			"negative attempts",
			Outcome{Attempts: big.NewInt(-1), Strategy: "base64"},
			true,
		},
		{
			"missing strategy",
			Outcome{Attempts: big.NewInt(0)},
			true,
		},
		{
			"negative elapsed",
			Outcome{Attempts: big.NewInt(0), Strategy: "x", ElapsedMS: -1},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outcome.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestOutcomeJSONCarriesBigAttempts(t *testing.T) {
	attempts, ok := new(big.Int).SetString("73786976294838206464", 10) // 2^66
	if !ok {
		t.Fatal("bad literal")
	}
	out := Outcome{Attempts: attempts, Strategy: "keyspace infeasible"}
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Attempts json.Number `json:"attempts"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Attempts.String() != "73786976294838206464" {
		t.Errorf("attempts survived as %s", decoded.Attempts)
	}
}
