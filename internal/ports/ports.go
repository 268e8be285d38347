package ports

import (
	"context"
	"time"

	"svw.info/sudokulogic/internal/domain"
)

// Outcome is the terminal result of a propagation run.
type Outcome int

const (
	// Solved means the board is complete and consistent.
	Solved Outcome = iota + 1
	// Stalled means no technique can make further progress; the puzzle
	// needs guessing, which this solver deliberately does not do.
	Stalled
	// Failed means propagation stalled and the board is internally
	// inconsistent, i.e. the givens themselves were contradictory.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Stalled:
		return "stalled"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Stats captures the work performed by a solve.
type Stats struct {
	Assignments  int
	Eliminations int
	Rounds       int
	Duration     time.Duration
}

// Result is the full outcome surface of a solve: the terminal state,
// the final board, and the work stats.
type Result struct {
	Outcome Outcome
	Board   *domain.Board
	Stats   Stats
}

// Solver runs logical deduction on a board until solved or stalled.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (Result, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.Cell, err error)
}

// Renderer writes a representation of a final board somewhere.
type Renderer interface {
	Render(b *domain.Board) error
}

// Storage persists and retrieves archived puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
