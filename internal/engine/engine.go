// Package engine implements the constraint-propagation solver: a
// candidate-domain map over the board plus a battery of deduction
// techniques iterated to a fixpoint. No guessing, no backtracking: a
// puzzle these techniques cannot finish is reported as stalled.
package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/ports"
)

// Techniques selects which deduction families a solve may use. The
// forced-value rules are always worth enabling; the others exist
// separately so callers (and tests) can establish which rules a given
// puzzle actually needs.
type Techniques uint8

const (
	TechSingles Techniques = 1 << iota
	TechNakedSubsets
	TechHiddenSubsets
	TechIntersections
)

// AllTechniques enables the full battery.
const AllTechniques = TechSingles | TechNakedSubsets | TechHiddenSubsets | TechIntersections

// Options tunes a solve.
type Options struct {
	// Techniques defaults to AllTechniques.
	Techniques Techniques
	// MaxSubsetSize caps naked/hidden subset searches; defaults to 4.
	MaxSubsetSize int
	// MaxRounds bounds the outer loop as a safety net; each round
	// either changes something or terminates the solve, so the bound
	// is never reached on a well-formed board. Defaults to 128.
	MaxRounds int
}

// DefaultOptions returns the full-battery configuration.
func DefaultOptions() *Options {
	return &Options{
		Techniques:    AllTechniques,
		MaxSubsetSize: 4,
		MaxRounds:     128,
	}
}

// Engine owns one board and its candidate-domain map for the duration
// of a solve. It is not safe for concurrent use and is not meant to
// be: every rule is a synchronous scan-and-mutate pass.
type Engine struct {
	board   *domain.Board
	domains map[domain.Cell]domain.CandidateSet
	opts    Options
	stats   ports.Stats
}

// New creates an engine over b. The engine takes ownership of b: all
// further board mutation must go through the engine.
func New(b *domain.Board, opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.Techniques == 0 {
		o.Techniques = AllTechniques
	}
	if o.MaxSubsetSize == 0 {
		o.MaxSubsetSize = 4
	}
	if o.MaxRounds == 0 {
		o.MaxRounds = 128
	}
	return &Engine{board: b, opts: o}
}

// Solve runs rounds of the technique battery until a full round
// changes nothing, then classifies the terminal state. The context is
// only consulted between rounds; a cancelled solve reports its current
// state as stalled.
func (e *Engine) Solve(ctx context.Context) ports.Result {
	start := time.Now()
	e.initialize()

	for e.stats.Rounds < e.opts.MaxRounds && ctx.Err() == nil {
		e.stats.Rounds++
		changed := false

		if e.opts.Techniques&TechSingles != 0 {
			if fixpoint(e.singles) {
				changed = true
			}
		}
		if e.opts.Techniques&TechNakedSubsets != 0 {
			for n := 2; n <= e.opts.MaxSubsetSize; n++ {
				if fixpoint(func() bool { return e.nakedSubsets(n) }) {
					changed = true
				}
			}
		}
		if e.opts.Techniques&TechHiddenSubsets != 0 {
			for n := 2; n <= e.opts.MaxSubsetSize; n++ {
				if fixpoint(func() bool { return e.hiddenSubsets(n) }) {
					changed = true
				}
			}
		}
		if e.opts.Techniques&TechIntersections != 0 {
			if fixpoint(e.intersections) {
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	e.stats.Duration = time.Since(start)
	res := ports.Result{Outcome: e.classify(), Board: e.board, Stats: e.stats}
	log.Debug().
		Stringer("outcome", res.Outcome).
		Int("assignments", e.stats.Assignments).
		Int("eliminations", e.stats.Eliminations).
		Int("rounds", e.stats.Rounds).
		Dur("took", e.stats.Duration).
		Msg("solve finished")
	return res
}

func (e *Engine) classify() ports.Outcome {
	switch {
	case e.board.IsComplete() && e.board.IsConsistent():
		return ports.Solved
	case !e.board.IsConsistent():
		return ports.Failed
	default:
		return ports.Stalled
	}
}

// Board exposes the engine's board, e.g. for rendering after a solve.
func (e *Engine) Board() *domain.Board { return e.board }

// Solver adapts the engine to the ports.Solver interface, running a
// fresh Engine over a clone of each submitted board.
type Solver struct {
	Opts *Options
}

// NewSolver returns a Solver with the given options (nil for defaults).
func NewSolver(opts *Options) *Solver { return &Solver{Opts: opts} }

func (s *Solver) Solve(ctx context.Context, b *domain.Board) (ports.Result, error) {
	res := New(b.Clone(), s.Opts).Solve(ctx)
	return res, ctx.Err()
}
