package ports

import (
	"context"

	"github.com/aretw0/frontier/pkg/domain"
)

// Solver runs a search and reports the explored order and the path.
type Solver interface {
	Solve(ctx context.Context, req domain.SolveRequest) (domain.SolveResult, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, req domain.SolveRequest) (domain.SolveResult, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, req domain.SolveRequest) (domain.SolveResult, error) {
	return f(ctx, req)
}
