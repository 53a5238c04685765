package assignment

import "strconv"

// Reducer is the closed set of matrix preprocessing strategies.
//
// Subtracting a constant from a whole row or column shifts the cost of every
// complete matching by that constant, so a reduced matrix has the same
// optimal assignments as the original.
//
//   - ReduceRowsThenColumns: row minima, then column minima of the
//     row-reduced matrix. Every row and every column ends up with a zero.
//   - ReduceRows: row minima only. Every row gets a zero.
//   - ReduceColumns: column minima only. Every column gets a zero.
type Reducer int

const (
	// ReduceRowsThenColumns subtracts row minima, then column minima.
	ReduceRowsThenColumns Reducer = iota

	// ReduceRows subtracts row minima only.
	ReduceRows

	// ReduceColumns subtracts column minima only.
	ReduceColumns
)

// String implements fmt.Stringer.
func (r Reducer) String() string {
	switch r {
	case ReduceRowsThenColumns:
		return "rows-then-columns"
	case ReduceRows:
		return "rows"
	case ReduceColumns:
		return "columns"
	default:
		return "Reducer(" + strconv.Itoa(int(r)) + ")"
	}
}

// ParseReducer maps a name produced by Reducer.String back to its value.
// Errors: ErrUnknownReducer.
func ParseReducer(s string) (Reducer, error) {
	switch s {
	case "rows-then-columns", "":
		return ReduceRowsThenColumns, nil
	case "rows":
		return ReduceRows, nil
	case "columns":
		return ReduceColumns, nil
	default:
		return 0, ErrUnknownReducer
	}
}

func (r Reducer) valid() bool {
	return r >= ReduceRowsThenColumns && r <= ReduceColumns
}

// Reduce applies r to m in place.
// Unknown reducers leave m untouched; Solve rejects them beforehand.
//
// Complexity: O(rows·cols).
func (r Reducer) Reduce(m *CostMatrix) {
	r.reduce(m)
}

// reduce applies r and returns the total amount subtracted, which is exactly
// how much the cost of any complete matching dropped.
func (r Reducer) reduce(m *CostMatrix) int {
	switch r {
	case ReduceRowsThenColumns:
		return reduceRows(m) + reduceColumns(m)
	case ReduceRows:
		return reduceRows(m)
	case ReduceColumns:
		return reduceColumns(m)
	default:
		return 0
	}
}

// reduceRows subtracts each row's minimum from that row.
func reduceRows(m *CostMatrix) int {
	var (
		total  int
		rowMin int
		i, j   int
	)
	for i = 0; i < m.rows; i++ {
		row := m.cells[i]
		rowMin = row[0]
		for j = 1; j < m.cols; j++ {
			if row[j] < rowMin {
				rowMin = row[j]
			}
		}
		if rowMin == 0 {
			continue
		}
		for j = 0; j < m.cols; j++ {
			row[j] -= rowMin
		}
		total += rowMin
	}

	return total
}

// reduceColumns subtracts each column's minimum from that column.
func reduceColumns(m *CostMatrix) int {
	var (
		total  int
		colMin int
		i, j   int
	)
	for j = 0; j < m.cols; j++ {
		colMin = m.cells[0][j]
		for i = 1; i < m.rows; i++ {
			if m.cells[i][j] < colMin {
				colMin = m.cells[i][j]
			}
		}
		if colMin == 0 {
			continue
		}
		for i = 0; i < m.rows; i++ {
			m.cells[i][j] -= colMin
		}
		total += colMin
	}

	return total
}
