package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
)

func runCatalog(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(stderr)

	catalogPath := fs.String("catalog", "", "Path to a puzzle catalog (defaults to the embedded catalog)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tBITS\tREWARD\tTITLE")
	for _, p := range cat.Puzzles() {
		bits := "-"
		if p.BitWidth > 0 {
			bits = fmt.Sprintf("%d", p.BitWidth)
		}
		reward := p.Reward
		if reward == "" {
			reward = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Category, bits, reward, p.Title)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(stderr, "render catalog: %v\n", err)
		return 1
	}
	return 0
}
