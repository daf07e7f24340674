package solver

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/HollowVault/keyhunt/internal/logging"
	"github.com/HollowVault/keyhunt/internal/puzzle"
)

// StrategyUnrecognized labels the outcome returned for descriptors whose
// category falls outside the closed set.
const StrategyUnrecognized = "unrecognized category"

// Engine routes puzzle descriptors to strategies and normalises their
// results. It holds no mutable state across calls: Solve is idempotent for
// identical descriptors (timing fields aside) and concurrent calls for
// different descriptors need no coordination.
type Engine struct {
	cascade    Strategy
	sequence   Strategy
	dictionary Strategy
	keyspace   Strategy
	logger     *slog.Logger
	audit      *logging.AuditLogger
}

// EngineOption customises engine construction.
type EngineOption func(*engineConfig)

type engineConfig struct {
	xorKey          []byte
	wordlist        []string
	feasibilityBits int
	successBits     int
	seed            uint64
	logger          *slog.Logger
	audit           *logging.AuditLogger
}

// WithXORKey overrides the decode cascade's default XOR key.
func WithXORKey(key []byte) EngineOption {
	return func(cfg *engineConfig) { cfg.xorKey = key }
}

// WithWordlist overrides the dictionary search candidate list.
func WithWordlist(words []string) EngineOption {
	return func(cfg *engineConfig) { cfg.wordlist = words }
}

// WithThresholds overrides the keyspace feasibility and success bit widths.
func WithThresholds(feasibilityBits, successBits int) EngineOption {
	return func(cfg *engineConfig) {
		cfg.feasibilityBits = feasibilityBits
		cfg.successBits = successBits
	}
}

// WithSeed sets the seed for the randomness driving simulated keyspace
// outcomes. Solves are deterministic for a given seed and descriptor.
func WithSeed(seed uint64) EngineOption {
	return func(cfg *engineConfig) { cfg.seed = seed }
}

// WithLogger sets the operational logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(cfg *engineConfig) { cfg.logger = logger }
}

// WithAuditLogger attaches a JSONL audit trail to solve activity.
func WithAuditLogger(audit *logging.AuditLogger) EngineOption {
	return func(cfg *engineConfig) { cfg.audit = audit }
}

// NewEngine assembles the four strategies behind a single dispatcher.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return &Engine{
		cascade:    NewDecodeCascade(cfg.xorKey, cfg.logger),
		sequence:   NewSequenceInference(cfg.logger),
		dictionary: NewDictionarySearch(cfg.wordlist),
		keyspace:   NewKeyspaceSearch(cfg.feasibilityBits, cfg.successBits, cfg.seed),
		logger:     cfg.logger,
		audit:      cfg.audit,
	}
}

// Solve dispatches the descriptor to its category's strategy and returns the
// normalised outcome. Unknown categories yield a structured failure, not an
// error; the error return is reserved for aborted calls (cancelled context,
// absurd bit widths).
func (e *Engine) Solve(ctx context.Context, desc puzzle.Descriptor) (Outcome, error) {
	start := time.Now()
	e.emit(logging.AuditEvent{
		PuzzleID:  desc.ID,
		EventType: logging.EventSolveStarted,
		Result:    logging.ResultInfo,
		Metadata:  map[string]any{"category": string(desc.Category)},
	})

	strategy, ok := e.strategyFor(desc.Category)
	if !ok {
		out := failure(StrategyUnrecognized, big.NewInt(0))
		out.ElapsedMS = time.Since(start).Milliseconds()
		e.logger.Warn("unrecognized puzzle category", "puzzle", desc.ID, "category", desc.Category)
		e.emit(logging.AuditEvent{
			PuzzleID:  desc.ID,
			EventType: logging.EventSolveFailed,
			Result:    logging.ResultUnsolved,
			Reason:    StrategyUnrecognized,
		})
		return out, nil
	}

	e.emit(logging.AuditEvent{
		PuzzleID:  desc.ID,
		EventType: logging.EventStrategySelected,
		Result:    logging.ResultInfo,
		Metadata:  map[string]any{"strategy": strategy.Name()},
	})

	out, err := strategy.Solve(ctx, desc)
	if err != nil {
		e.logger.Error("solve aborted", "puzzle", desc.ID, "strategy", strategy.Name(), "error", err)
		e.emit(logging.AuditEvent{
			PuzzleID:  desc.ID,
			EventType: logging.EventSolveAborted,
			Result:    logging.ResultError,
			Reason:    err.Error(),
		})
		return Outcome{}, err
	}
	out.ElapsedMS = time.Since(start).Milliseconds()

	if out.Succeeded {
		e.logger.Info("puzzle solved",
			"puzzle", desc.ID,
			"strategy", out.Strategy,
			"attempts", out.Attempts.String())
		e.emit(logging.AuditEvent{
			PuzzleID:  desc.ID,
			EventType: logging.EventSolveCompleted,
			Result:    logging.ResultSolved,
			Metadata:  map[string]any{"strategy": out.Strategy, "attempts": out.Attempts.String()},
		})
	} else {
		e.logger.Info("puzzle not solved",
			"puzzle", desc.ID,
			"strategy", out.Strategy,
			"attempts", out.Attempts.String())
		e.emit(logging.AuditEvent{
			PuzzleID:  desc.ID,
			EventType: logging.EventSolveFailed,
			Result:    logging.ResultUnsolved,
			Reason:    out.Strategy,
		})
	}
	return out, nil
}

// strategyFor is the closed routing table from category to strategy. Adding a
// category means extending this switch; the default arm is reserved for
// values outside the enum.
func (e *Engine) strategyFor(cat puzzle.Category) (Strategy, bool) {
	switch cat {
	case puzzle.CategoryCipherDecode:
		return e.cascade, true
	case puzzle.CategoryPatternAnalysis:
		return e.sequence, true
	case puzzle.CategoryHashPreimage:
		return e.dictionary, true
	case puzzle.CategoryBitcoinAddress, puzzle.CategoryPrivateKeyRecovery:
		return e.keyspace, true
	default:
		return nil, false
	}
}

func (e *Engine) emit(event logging.AuditEvent) {
	if e.audit == nil {
		return
	}
	if err := e.audit.Emit(event); err != nil {
		e.logger.Warn("audit emit failed", "error", err)
	}
}
