package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleOutcomes = `{"version":"0.1","id":"01J0000000000000000000000A","puzzle_id":"cipher-001","category":"cipher-decode","succeeded":true,"solution":"PrivateKeyFragment","strategy":"base64","attempts":1,"elapsed_ms":2,"ts":"2026-08-30T10:00:00Z"}
{"version":"0.1","id":"01J0000000000000000000000B","puzzle_id":"key-001","category":"private-key-recovery","succeeded":false,"strategy":"keyspace infeasible (73786976294838206464 keys)","attempts":73786976294838206464,"elapsed_ms":0,"ts":"2026-08-30T10:01:00Z"}
{"version":"0.1","id":"01J0000000000000000000000C","puzzle_id":"pattern-001","category":"pattern-analysis","succeeded":true,"solution":"34","strategy":"fibonacci recurrence","attempts":1,"elapsed_ms":1,"ts":"2026-08-30T10:02:00Z"}
`

func writeSampleOutcomes(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outcomes.jsonl")
	if err := os.WriteFile(path, []byte(sampleOutcomes), 0o644); err != nil {
		t.Fatalf("write outcomes: %v", err)
	}
	return path
}

func countLines(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return len(strings.Split(s, "\n"))
}

func TestRunResultsShowsAll(t *testing.T) {
	path := writeSampleOutcomes(t)

	var stdout, stderr bytes.Buffer
	code := runResults([]string{"--path", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if got := countLines(stdout.String()); got != 3 {
		t.Fatalf("expected 3 outcomes, got %d", got)
	}
}

func TestRunResultsSolvedFilter(t *testing.T) {
	path := writeSampleOutcomes(t)

	var stdout, stderr bytes.Buffer
	code := runResults([]string{"--path", path, "--solved"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	out := stdout.String()
	if got := countLines(out); got != 2 {
		t.Fatalf("expected 2 solved outcomes, got %d", got)
	}
	if strings.Contains(out, "key-001") {
		t.Error("unsolved outcome leaked through --solved filter")
	}
}

func TestRunResultsCategoryFilter(t *testing.T) {
	path := writeSampleOutcomes(t)

	var stdout, stderr bytes.Buffer
	code := runResults([]string{"--path", path, "--category", "pattern-analysis"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	out := stdout.String()
	if got := countLines(out); got != 1 {
		t.Fatalf("expected 1 outcome, got %d", got)
	}
	if !strings.Contains(out, "pattern-001") {
		t.Errorf("expected pattern-001, got %q", out)
	}
}

func TestRunResultsStrategyFilter(t *testing.T) {
	path := writeSampleOutcomes(t)

	var stdout, stderr bytes.Buffer
	code := runResults([]string{"--path", path, "--strategy", "infeasible"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if got := countLines(stdout.String()); got != 1 {
		t.Fatalf("expected 1 outcome, got %d", got)
	}
}

func TestRunResultsConflictingFilters(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runResults([]string{"--solved", "--unsolved"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestRunResultsMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runResults([]string{"--path", filepath.Join(t.TempDir(), "nope.jsonl")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}
