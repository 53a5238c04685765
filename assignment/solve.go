// Package assignment - entry points.
//
// This file wires the pipeline
//
//	validate → (pad) → orient → reduce → core solver → restore → format
//
// and provides the concurrency helpers around it. A solve session owns its
// matrix copy and its engine state; nothing is shared between sessions, so
// the helpers need no locking.
package assignment

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Solve validates costs and returns a minimum-cost assignment.
// costs may be rectangular; the surplus rows or columns stay unassigned.
// costs is never modified.
//
// Errors: *InputError (ErrInvalidInput), ErrUnknownAlgorithm, ErrUnknownReducer.
//
// Complexity: O(n³), n = max(rows, cols).
func Solve(costs [][]int, opts ...Option) (*Result, error) {
	m, err := NewCostMatrix(costs)
	if err != nil {
		return nil, err
	}

	return SolveMatrix(m, opts...)
}

// SolveMatrix solves an already validated matrix. m is never modified.
// Errors: ErrInvalidInput for a nil matrix, ErrUnknownAlgorithm, ErrUnknownReducer.
func SolveMatrix(m *CostMatrix, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, inputError(-1, -1, "matrix is nil")
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return solve(m, o), nil
}

// SolveContext is Solve run on a separate goroutine. When ctx expires first
// it returns ctx.Err() and the pending result is discarded; the engine has no
// resumable intermediate state.
func SolveContext(ctx context.Context, costs [][]int, opts ...Option) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := NewCostMatrix(costs)
	if err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	done := make(chan *Result, 1)
	go func() {
		done <- solve(m, o)
	}()

	select {
	case res := <-done:
		return res, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SolveAll solves independent problems concurrently, running at most limit
// sessions at once (limit ≤ 0 means no limit). Results are in input order.
//
// Every problem is validated before any solving starts; the first invalid one
// fails the batch with an error wrapping its *InputError.
func SolveAll(ctx context.Context, problems [][][]int, limit int, opts ...Option) ([]*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	matrices := make([]*CostMatrix, len(problems))
	for i, p := range problems {
		if matrices[i], err = NewCostMatrix(p); err != nil {
			return nil, fmt.Errorf("problem %d: %w", i, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([]*Result, len(matrices))
	for i := range matrices {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = solve(matrices[i], o)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// solve runs one session over a private copy of m.
func solve(m *CostMatrix, o Options) *Result {
	core, pad := o.Algorithm.core()

	work := m
	if pad {
		work = m.padSquare()
	}
	work, ori := orient(work, core.shape())
	if work == m {
		work = m.Clone()
	}

	reducer := reducerFor(o.Reducer, work.rows, work.cols)
	offset := reducer.reduce(work)

	rows, cols, st := core.solve(work, o.Logger)
	rows, cols = ori.restore(rows, cols)

	res := newResult(rows, cols, m.rows, m.cols)
	res.cost = matchingCost(m, res.rows)

	o.Logger.Debug().
		Int("rows", m.rows).
		Int("cols", m.cols).
		Stringer("algorithm", o.Algorithm).
		Stringer("reducer", reducer).
		Bool("transposed", ori.transposed).
		Bool("padded", pad).
		Int("reduced_by", offset).
		Int("augmentations", st.augmentations).
		Int("adjustments", st.adjustments).
		Int("cost", res.cost).
		Msg("assignment solved")

	return res
}

// matchingCost sums the original costs of the assigned cells.
func matchingCost(m *CostMatrix, rows []Index) int {
	total := 0
	for i, x := range rows {
		if j, ok := x.Get(); ok {
			total += m.cells[i][j]
		}
	}

	return total
}
