package assignment

// CostMatrix is a validated, privately owned grid of non-negative costs.
//
// A CostMatrix handed to SolveMatrix is never modified: each solve session
// works on its own clone, which the reducer and the core solver mutate in place.
type CostMatrix struct {
	cells [][]int
	rows  int
	cols  int
}

// NewCostMatrix validates costs and returns a deep copy of it.
// Errors: any *InputError from Validate.
func NewCostMatrix(costs [][]int) (*CostMatrix, error) {
	if err := Validate(costs); err != nil {
		return nil, err
	}

	return newCostMatrix(costs), nil
}

// newCostMatrix deep-copies costs without validation.
// The backing storage is one contiguous slice sliced per row.
func newCostMatrix(costs [][]int) *CostMatrix {
	rows, cols := len(costs), len(costs[0])
	m := allocCostMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		copy(m.cells[i], costs[i])
	}

	return m
}

func allocCostMatrix(rows, cols int) *CostMatrix {
	flat := make([]int, rows*cols)
	cells := make([][]int, rows)
	for i := range cells {
		cells[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return &CostMatrix{cells: cells, rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (m *CostMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CostMatrix) Cols() int { return m.cols }

// At returns the cost of cell (i, j).
// Errors: ErrOutOfRange.
func (m *CostMatrix) At(i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}

	return m.cells[i][j], nil
}

// Values returns a deep copy of the cells.
func (m *CostMatrix) Values() [][]int {
	return m.Clone().cells
}

// Clone returns an independent copy of m.
func (m *CostMatrix) Clone() *CostMatrix {
	return newCostMatrix(m.cells)
}

// Transpose returns an independent copy of m where cell (i, j) becomes (j, i).
//
// Complexity: O(rows·cols).
func (m *CostMatrix) Transpose() *CostMatrix {
	t := allocCostMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.cells[j][i] = m.cells[i][j]
		}
	}

	return t
}

// padSquare returns an independent n×n copy of m, n = max(rows, cols).
// The dummy rows or columns cost 0: a constant row or column shifts every
// matching by the same amount, so the optimum over the real cells is kept.
func (m *CostMatrix) padSquare() *CostMatrix {
	n := m.rows
	if m.cols > n {
		n = m.cols
	}
	p := allocCostMatrix(n, n)
	for i := 0; i < m.rows; i++ {
		copy(p.cells[i], m.cells[i])
	}

	return p
}
