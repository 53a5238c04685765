package assignment

// orientation records how a matrix was reshaped for its core solver so the
// result can be mapped back without recomputation.
type orientation struct {
	transposed bool
}

// orient returns a matrix satisfying shape, transposing m into an
// independent copy when needed. A non-square matrix offered to a
// square-only solver is a contract violation and panics.
func orient(m *CostMatrix, shape Shape) (*CostMatrix, orientation) {
	if shape.accepts(m.rows, m.cols) {
		return m, orientation{}
	}
	if shape == ShapeSquare {
		contractViolation("square-only solver received a %dx%d matrix", m.rows, m.cols)
	}

	return m.Transpose(), orientation{transposed: true}
}

// restore maps the row and column views computed on the oriented matrix
// back to the orientation of the input.
func (o orientation) restore(rows, cols []Index) ([]Index, []Index) {
	if o.transposed {
		return cols, rows
	}

	return rows, cols
}

// reducerFor narrows r to the passes that keep the optimum of an oriented
// rows×cols matrix. On a non-square matrix only the fully matched dimension
// may be reduced: a column that stays unassigned does not pay its minimum,
// so subtracting it would favour that column unfairly.
func reducerFor(r Reducer, rows, cols int) Reducer {
	switch {
	case rows == cols:
		return r
	case rows < cols:
		return ReduceRows
	default:
		return ReduceColumns
	}
}
