package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/HollowVault/keyhunt/internal/config"
	"github.com/HollowVault/keyhunt/internal/logging"
	"github.com/HollowVault/keyhunt/internal/puzzle"
	"github.com/HollowVault/keyhunt/internal/report"
	"github.com/HollowVault/keyhunt/internal/solver"
)

func runSolve(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	puzzleID := fs.String("puzzle", "", "Catalog puzzle id to solve")
	catalogPath := fs.String("catalog", "", "Path to a puzzle catalog (defaults to the embedded catalog)")
	challenge := fs.String("challenge", "", "Ad-hoc challenge payload (requires --category)")
	category := fs.String("category", "", "Ad-hoc puzzle category")
	bits := fs.Int("bits", 0, "Declared key bit width for keyspace categories")
	known := fs.String("known", "", "Known solution for dictionary-backed categories")
	outPath := fs.String("out", "", "Outcome JSONL path (defaults to KEYHUNT_OUT)")
	noSave := fs.Bool("no-save", false, "Skip persisting the outcome record")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	if *catalogPath == "" {
		*catalogPath = cfg.CatalogPath
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	desc, err := resolveDescriptor(*puzzleID, *catalogPath, *challenge, *category, *bits, *known)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	var audit *logging.AuditLogger
	if cfg.AuditLogPath != "" {
		audit, err = logging.NewAuditLogger("keyhuntctl",
			logging.WithoutStdout(), logging.WithFile(cfg.AuditLogPath))
		if err != nil {
			fmt.Fprintf(stderr, "open audit log: %v\n", err)
			return 1
		}
		defer audit.Close()
	}

	sessionID := uuid.NewString()
	if audit != nil {
		_ = audit.Emit(logging.AuditEvent{
			EventType: logging.EventCatalogLoaded,
			Result:    logging.ResultInfo,
			Metadata:  map[string]any{"session": sessionID, "puzzle": desc.ID},
		})
	}

	engine := solver.NewEngine(
		solver.WithXORKey([]byte(cfg.XORKey)),
		solver.WithThresholds(cfg.FeasibilityBits, cfg.SuccessBits),
		solver.WithSeed(cfg.Seed),
		solver.WithLogger(logger),
		solver.WithAuditLogger(audit),
	)

	outcome, err := engine.Solve(context.Background(), desc)
	if err != nil {
		fmt.Fprintf(stderr, "solve aborted: %v\n", err)
		return 1
	}

	if !*noSave {
		writer := report.NewWriter(*outPath)
		defer writer.Close()
		record := report.NewRecord(desc, outcome, time.Now())
		if err := writer.Write(record); err != nil {
			fmt.Fprintf(stderr, "persist outcome: %v\n", err)
			return 1
		}
	}

	printOutcome(stdout, desc, outcome)
	if outcome.Succeeded {
		return 0
	}
	return 1
}

// resolveDescriptor builds the puzzle descriptor from either a catalog entry
// or the ad-hoc flags.
func resolveDescriptor(puzzleID, catalogPath, challenge, category string, bits int, known string) (puzzle.Descriptor, error) {
	if puzzleID != "" {
		cat, err := loadCatalog(catalogPath)
		if err != nil {
			return puzzle.Descriptor{}, err
		}
		desc, ok := cat.Get(puzzleID)
		if !ok {
			return puzzle.Descriptor{}, fmt.Errorf("puzzle %q not found in catalog", puzzleID)
		}
		return desc, nil
	}

	if challenge == "" && bits == 0 {
		return puzzle.Descriptor{}, fmt.Errorf("either --puzzle or --challenge/--category is required")
	}
	parsed, err := puzzle.ParseCategory(category)
	if err != nil {
		return puzzle.Descriptor{}, err
	}
	desc := puzzle.Descriptor{
		ID:            "adhoc",
		Category:      parsed,
		Challenge:     challenge,
		BitWidth:      bits,
		KnownSolution: known,
	}
	if err := desc.Validate(); err != nil {
		return puzzle.Descriptor{}, err
	}
	return desc, nil
}

func loadCatalog(path string) (*puzzle.Catalog, error) {
	if path == "" {
		return puzzle.DefaultCatalog()
	}
	return puzzle.LoadCatalog(path)
}

func printOutcome(w io.Writer, desc puzzle.Descriptor, out solver.Outcome) {
	if out.Succeeded {
		fmt.Fprintf(w, "puzzle %s solved via %s after %s attempt(s) in %dms\n",
			desc.ID, out.Strategy, out.Attempts, out.ElapsedMS)
		fmt.Fprintf(w, "solution: %s\n", out.Solution)
		return
	}
	fmt.Fprintf(w, "puzzle %s not solved: %s (%s attempt(s), %dms)\n",
		desc.ID, out.Strategy, out.Attempts, out.ElapsedMS)
}
