// Command keyhuntctl drives the puzzle solving engine from the terminal: it
// loads a puzzle catalog, dispatches solves, and inspects persisted outcomes.
package main

import (
	"fmt"
	"os"
)

const productName = "keyhunt"
const cliBanner = productName + " CLI (keyhuntctl)"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage(os.Stderr)
		os.Exit(2)
	}

	switch args[0] {
	case "solve":
		os.Exit(runSolve(args[1:], os.Stdout, os.Stderr))
	case "decode":
		os.Exit(runDecode(args[1:], os.Stdout, os.Stderr))
	case "catalog":
		os.Exit(runCatalog(args[1:], os.Stdout, os.Stderr))
	case "results":
		os.Exit(runResults(args[1:], os.Stdout, os.Stderr))
	case "version":
		os.Exit(runVersion(os.Stdout))
	case "help", "-h", "--help":
		usage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w *os.File) {
	fmt.Fprintln(w, cliBanner)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: keyhuntctl <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  solve     solve a catalog puzzle or an ad-hoc challenge")
	fmt.Fprintln(w, "  decode    run a single codec against an input string")
	fmt.Fprintln(w, "  catalog   list the puzzles in the catalog")
	fmt.Fprintln(w, "  results   filter persisted solve outcomes")
	fmt.Fprintln(w, "  version   print version information")
}
