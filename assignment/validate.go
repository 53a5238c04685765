// Package assignment - validation of raw cost matrices.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input; every rejection is an *InputError
//     matching ErrInvalidInput.
//   - O(rows·cols) single pass, stops at the first violation.
package assignment

// Validate checks that costs is a usable cost matrix.
//
// Contract (checked in this order):
//   - costs is non-nil and has at least one row,
//   - the first row has at least one column,
//   - every row has the length of the first row,
//   - every cell is ≥ 0.
//
// Complexity: O(rows·cols).
func Validate(costs [][]int) error {
	if costs == nil {
		return inputError(-1, -1, "matrix is nil")
	}
	if len(costs) == 0 {
		return inputError(-1, -1, "matrix has 0 rows")
	}
	if len(costs[0]) == 0 {
		return inputError(0, -1, "first row has 0 columns")
	}

	var (
		cols = len(costs[0])
		i, j int
	)
	for i = range costs {
		if len(costs[i]) != cols {
			return inputError(i, -1, "non-rectangular, expected length %d but got %d", cols, len(costs[i]))
		}
		for j = 0; j < cols; j++ {
			if costs[i][j] < 0 {
				return inputError(i, j, "negative value %d", costs[i][j])
			}
		}
	}

	return nil
}
