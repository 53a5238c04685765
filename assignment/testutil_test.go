// Package assignment_test provides helpers shared across *_test.go files:
// a brute-force oracle, deterministic random matrices and result checks.
package assignment_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/assignment"
)

const (
	// seedDet keeps random instances reproducible across runs.
	seedDet = int64(20240611)

	// bruteMax is the largest dimension handed to the permutation oracle.
	bruteMax = 6
)

// bruteForceCost returns the optimal cost of costs by trying every injective
// map from the smaller dimension into the larger one.
func bruteForceCost(costs [][]int) int {
	rows, cols := len(costs), len(costs[0])
	if rows > cols {
		return bruteForceCost(transposed(costs))
	}
	best := -1
	used := make([]bool, cols)
	var walk func(i, acc int)
	walk = func(i, acc int) {
		if best >= 0 && acc >= best {
			return
		}
		if i == rows {
			best = acc

			return
		}
		for j := 0; j < cols; j++ {
			if used[j] {
				continue
			}
			used[j] = true
			walk(i+1, acc+costs[i][j])
			used[j] = false
		}
	}
	walk(0, 0)

	return best
}

// transposed returns a transposed copy of costs.
func transposed(costs [][]int) [][]int {
	t := make([][]int, len(costs[0]))
	for j := range t {
		t[j] = make([]int, len(costs))
		for i := range costs {
			t[j][i] = costs[i][j]
		}
	}

	return t
}

// randomMatrix returns a rows×cols matrix with cells in [0, hi].
func randomMatrix(rng *rand.Rand, rows, cols, hi int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
		for j := range m[i] {
			m[i][j] = rng.Intn(hi + 1)
		}
	}

	return m
}

// cloneCosts deep-copies costs.
func cloneCosts(costs [][]int) [][]int {
	c := make([][]int, len(costs))
	for i := range costs {
		c[i] = append([]int(nil), costs[i]...)
	}

	return c
}

// ints converts an Index view to ints, -1 for unassigned.
func ints(v []assignment.Index) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = x.Int()
	}

	return out
}

// requireValidMatching checks sizes, mutual consistency of both views,
// the number of assigned pairs and the reported cost.
func requireValidMatching(t *testing.T, costs [][]int, res *assignment.Result) {
	t.Helper()
	rows, cols := len(costs), len(costs[0])
	require.Equal(t, rows, res.Rows())
	require.Equal(t, cols, res.Cols())

	rv, cv := res.RowAssignments(), res.ColumnAssignments()
	assigned, total := 0, 0
	for i, x := range rv {
		j, ok := x.Get()
		if !ok {
			continue
		}
		require.GreaterOrEqual(t, j, 0)
		require.Less(t, j, cols)
		back, ok := cv[j].Get()
		require.True(t, ok, "column %d must point back to row %d", j, i)
		require.Equal(t, i, back)
		assigned++
		total += costs[i][j]
	}
	for j, x := range cv {
		if i, ok := x.Get(); ok {
			got, _ := rv[i].Get()
			require.Equal(t, j, got, "row %d must point back to column %d", i, j)
		}
	}
	require.Equal(t, min(rows, cols), assigned)
	require.Len(t, res.Pairs(), assigned)
	require.Equal(t, total, res.Cost())
}
