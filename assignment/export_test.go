package assignment

import "github.com/rs/zerolog"

// White-box bridge for assignment_test. Compiled with tests only.

// Orient exposes the orientation adapter.
func Orient(m *CostMatrix, shape Shape) (*CostMatrix, bool) {
	o, ori := orient(m, shape)

	return o, ori.transposed
}

// ReducerFor exposes the shape-aware reducer narrowing.
var ReducerFor = reducerFor

// ReduceWithOffset applies r and returns the total subtracted.
func ReduceWithOffset(r Reducer, m *CostMatrix) int {
	return r.reduce(m)
}

// RunEngine runs the augmenting-path engine on m, mutating it, and returns
// the star views plus the number of augmentations and dual adjustments.
func RunEngine(m *CostMatrix, accept Shape) (rows, cols []Index, augmentations, adjustments int) {
	rows, cols, st := munkresCore{accept: accept}.solve(m, zerolog.Nop())

	return rows, cols, st.augmentations, st.adjustments
}

// PadSquare exposes the zero-cost padding used by MunkresPadded.
func PadSquare(m *CostMatrix) *CostMatrix {
	return m.padSquare()
}

// NewResult exposes the result formatter.
var NewResult = newResult
