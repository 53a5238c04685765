package assignment

// Result is the read-only outcome of a solve.
//
// Views are sized to the dimensions of the matrix given to Solve, before any
// padding or transposition. Accessors return copies; a Result never changes
// after construction and is safe to share between goroutines.
type Result struct {
	rows []Index // rows[i] = column assigned to row i
	cols []Index // cols[j] = row assigned to column j
	cost int
}

// newResult trims the engine views to nRows×nCols. Positions beyond the
// original bounds, and partners pointing beyond them, become Unassigned.
func newResult(rows, cols []Index, nRows, nCols int) *Result {
	return &Result{
		rows: trimView(rows, nRows, nCols),
		cols: trimView(cols, nCols, nRows),
	}
}

// trimView keeps the first size entries of v, unassigning any partner ≥ limit.
func trimView(v []Index, size, limit int) []Index {
	out := make([]Index, size)
	for i := 0; i < size && i < len(v); i++ {
		if p, ok := v[i].Get(); ok && p < limit {
			out[i] = v[i]
		}
	}

	return out
}

// Rows returns the number of rows of the solved matrix.
func (r *Result) Rows() int { return len(r.rows) }

// Cols returns the number of columns of the solved matrix.
func (r *Result) Cols() int { return len(r.cols) }

// Cost returns the total original cost of the assigned pairs.
func (r *Result) Cost() int { return r.cost }

// RowAssignment returns the column assigned to row i, or Unassigned.
// Errors: ErrOutOfRange.
func (r *Result) RowAssignment(i int) (Index, error) {
	if i < 0 || i >= len(r.rows) {
		return Unassigned, ErrOutOfRange
	}

	return r.rows[i], nil
}

// ColumnAssignment returns the row assigned to column j, or Unassigned.
// Errors: ErrOutOfRange.
func (r *Result) ColumnAssignment(j int) (Index, error) {
	if j < 0 || j >= len(r.cols) {
		return Unassigned, ErrOutOfRange
	}

	return r.cols[j], nil
}

// RowAssignments returns a copy of the row → column view.
func (r *Result) RowAssignments() []Index {
	return append([]Index(nil), r.rows...)
}

// ColumnAssignments returns a copy of the column → row view.
func (r *Result) ColumnAssignments() []Index {
	return append([]Index(nil), r.cols...)
}

// Pairs returns the assigned (row, column) pairs ordered by row.
// Unassigned rows are skipped.
func (r *Result) Pairs() []Pair {
	pairs := make([]Pair, 0, min(len(r.rows), len(r.cols)))
	for i, x := range r.rows {
		if j, ok := x.Get(); ok {
			pairs = append(pairs, Pair{Row: i, Col: j})
		}
	}

	return pairs
}

// Transpose returns the result of the transposed problem: the row and
// column views are swapped, nothing is recomputed.
func (r *Result) Transpose() *Result {
	return &Result{rows: r.cols, cols: r.rows, cost: r.cost}
}
