package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/HollowVault/keyhunt/internal/report"
)

func runResults(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("results", flag.ContinueOnError)
	fs.SetOutput(stderr)

	path := fs.String("path", "", "Outcome JSONL path (defaults to KEYHUNT_OUT)")
	solvedOnly := fs.Bool("solved", false, "Only show solved outcomes")
	unsolvedOnly := fs.Bool("unsolved", false, "Only show unsolved outcomes")
	category := fs.String("category", "", "Filter by puzzle category")
	strategy := fs.String("strategy", "", "Filter by strategy substring")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *solvedOnly && *unsolvedOnly {
		fmt.Fprintln(stderr, "--solved and --unsolved are mutually exclusive")
		return 2
	}

	target := *path
	if target == "" {
		target = report.DefaultOutcomesPath
	}
	f, err := os.Open(target)
	if err != nil {
		fmt.Fprintf(stderr, "open outcomes: %v\n", err)
		return 1
	}
	defer f.Close()

	shown := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		if !matchesFilters(line, *solvedOnly, *unsolvedOnly, *category, *strategy) {
			continue
		}
		fmt.Fprintln(stdout, string(line))
		shown++
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "read outcomes: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "%d outcome(s)\n", shown)
	return 0
}

func matchesFilters(line []byte, solvedOnly, unsolvedOnly bool, category, strategy string) bool {
	if !gjson.ValidBytes(line) {
		return false
	}
	succeeded := gjson.GetBytes(line, "succeeded").Bool()
	if solvedOnly && !succeeded {
		return false
	}
	if unsolvedOnly && succeeded {
		return false
	}
	if category != "" && gjson.GetBytes(line, "category").String() != category {
		return false
	}
	if strategy != "" && !strings.Contains(gjson.GetBytes(line, "strategy").String(), strategy) {
		return false
	}
	return true
}
