package usecase

import (
	"context"
	"errors"

	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/ports"
)

// Service aggregates the solver, validator, and storage behind one
// application-facing surface.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve runs the propagation engine on b.
func (u *Service) Solve(ctx context.Context, b *domain.Board) (ports.Result, error) {
	if u.Solver == nil {
		return ports.Result{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

// Validate scans b for unit conflicts.
func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.Cell, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// SolveAndArchive solves b and records the puzzle together with its
// outcome, returning the stored record id and the solve result.
func (u *Service) SolveAndArchive(ctx context.Context, name string, b *domain.Board) (string, ports.Result, error) {
	if u.Storage == nil {
		return "", ports.Result{}, errNotConfigured
	}
	res, err := u.Solve(ctx, b)
	if err != nil {
		return "", res, err
	}
	p := &domain.Puzzle{
		Name:    name,
		Givens:  b.Grid(),
		Final:   res.Board.Grid(),
		Outcome: res.Outcome.String(),
	}
	if err := u.Storage.Save(ctx, p); err != nil {
		return "", res, err
	}
	return p.ID, res, nil
}

// Load retrieves an archived puzzle.
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

// List enumerates archived puzzles.
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
