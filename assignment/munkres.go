// Package assignment - augmenting-path engine (Kuhn–Munkres, primal-dual form).
//
// Algorithm outline (rows ≤ cols, matrix reduced, all cells ≥ 0):
//  1. Star the first zero of each row whose column holds no star yet and
//     cover that column.
//  2. If numberCoveredCols == rows, the stars form an optimal assignment.
//  3. Prime an uncovered zero. If its row holds no star, go to 5. Otherwise
//     cover the row, uncover the column of its star and keep searching, the
//     freshly uncovered columns being revisited through a FIFO queue. When no
//     uncovered zero remains, go to 4.
//  4. Let h be the smallest uncovered value. Add h to every covered row and
//     subtract h from every uncovered column, then go back to 3.
//  5. Starting at the primed zero found in 3, alternately star primes and
//     unstar the star sharing their column, until a column without a star is
//     reached. Erase primes, uncover every row, cover starred columns, go to 2.
//
// Every pass through 5 adds one star; 4 always exposes a new uncovered zero.
//
// Complexity: O(rows²·cols) time, O(rows+cols) extra space.
package assignment

import "github.com/rs/zerolog"

// coreSolver is the closed interface implemented by the core solver variants.
type coreSolver interface {
	// shape is the constraint the solver places on its (reduced) input.
	shape() Shape

	// solve computes an optimal assignment over m, mutating m in place.
	// The returned slices are indexed by the rows and columns of m.
	solve(m *CostMatrix, log zerolog.Logger) (rows, cols []Index, st stats)
}

// stats counts the work done by one engine run.
type stats struct {
	augmentations int
	adjustments   int
}

// munkresCore runs the augmenting-path engine and declares accept as its
// shape constraint. accept must imply cols ≥ rows.
type munkresCore struct {
	accept Shape
}

func (c munkresCore) shape() Shape { return c.accept }

func (c munkresCore) solve(m *CostMatrix, log zerolog.Logger) ([]Index, []Index, stats) {
	if m.cols < m.rows {
		contractViolation("munkres engine needs cols ≥ rows, got %dx%d", m.rows, m.cols)
	}
	checkReduced(m)

	e := newMunkres(m)
	e.run(log)

	return e.starredRows, e.starredCols, e.st
}

// checkReduced verifies the engine precondition: every cell is non-negative
// and every row, or every column, holds at least one zero.
func checkReduced(m *CostMatrix) {
	var (
		i, j       int
		rowsZeroed = true
		colZero    = make([]bool, m.cols)
	)
	for i = 0; i < m.rows; i++ {
		hasZero := false
		for j = 0; j < m.cols; j++ {
			switch v := m.cells[i][j]; {
			case v < 0:
				contractViolation("negative cell [%d][%d] = %d", i, j, v)
			case v == 0:
				hasZero = true
				colZero[j] = true
			}
		}
		if !hasZero {
			rowsZeroed = false
		}
	}
	if rowsZeroed {
		return
	}
	for j = 0; j < m.cols; j++ {
		if !colZero[j] {
			contractViolation("matrix is not reduced: row and column %d without zero", j)
		}
	}
}

// munkres is the session-scoped assignment state. All cross references are
// positions in fixed-size slices.
type munkres struct {
	m *CostMatrix

	starredRows []Index // starredRows[i] = column of the star in row i
	starredCols []Index // starredCols[j] = row of the star in column j
	primedRows  []Index // primedRows[i] = column of the prime in row i
	primedCols  []Index // primedCols[j] = row of the last prime in column j
	coveredRows []bool
	coveredCols []bool

	// numberCoveredCols equals the number of stars right after starring and
	// after each augmentation; the search may lower it temporarily.
	numberCoveredCols int

	queue []int // uncovered columns waiting to be revisited
	st    stats
}

func newMunkres(m *CostMatrix) *munkres {
	e := &munkres{
		m:           m,
		starredRows: make([]Index, m.rows),
		starredCols: make([]Index, m.cols),
		primedRows:  make([]Index, m.rows),
		primedCols:  make([]Index, m.cols),
		coveredRows: make([]bool, m.rows),
		coveredCols: make([]bool, m.cols),
		queue:       make([]int, 0, m.cols),
	}
	e.starInitialZeros()

	return e
}

// starInitialZeros stars the first zero of each row whose column is free.
func (e *munkres) starInitialZeros() {
	var i, j int
	for i = 0; i < e.m.rows; i++ {
		for j = 0; j < e.m.cols; j++ {
			if e.m.cells[i][j] == 0 && !e.starredCols[j].ok {
				e.starredRows[i] = Assigned(j)
				e.starredCols[j] = Assigned(i)
				e.coveredCols[j] = true
				e.numberCoveredCols++

				break
			}
		}
	}
}

func (e *munkres) run(log zerolog.Logger) {
	log.Trace().Int("stars", e.numberCoveredCols).Msg("initial starring")
	for e.numberCoveredCols < e.m.rows {
		r, c, found := e.primeZeros()
		for !found {
			e.adjust(log)
			r, c, found = e.primeZeros()
		}
		e.augment(r, c)
		e.st.augmentations++
		log.Trace().
			Int("row", r).
			Int("col", c).
			Int("stars", e.numberCoveredCols).
			Msg("augmented")
	}
}

// primeZeros looks for an uncovered zero whose row holds no star, priming
// every uncovered zero met on the way. It returns that zero's position, or
// found=false when the uncovered region holds no zero at all.
func (e *munkres) primeZeros() (r, c int, found bool) {
	var i, j int
	e.queue = e.queue[:0]

	for i = 0; i < e.m.rows; i++ {
		if e.coveredRows[i] {
			continue
		}
		for j = 0; j < e.m.cols; j++ {
			if e.coveredCols[j] || e.m.cells[i][j] != 0 {
				continue
			}
			if e.prime(i, j) {
				return i, j, true
			}
			// Row i is covered now; move on to the next row.
			break
		}
	}

	for head := 0; head < len(e.queue); head++ {
		j = e.queue[head]
		for i = 0; i < e.m.rows; i++ {
			if e.coveredRows[i] || e.m.cells[i][j] != 0 {
				continue
			}
			if e.prime(i, j) {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// prime marks the uncovered zero (i, j). It returns true when row i has no
// star, i.e. (i, j) ends an augmenting path. Otherwise row i is covered and
// the column of its star is uncovered and queued.
func (e *munkres) prime(i, j int) bool {
	e.primedRows[i] = Assigned(j)
	e.primedCols[j] = Assigned(i)

	star, ok := e.starredRows[i].Get()
	if !ok {
		return true
	}
	e.coveredRows[i] = true
	e.coveredCols[star] = false
	e.numberCoveredCols--
	e.queue = append(e.queue, star)

	return false
}

// augment flips the alternating path that starts at the primed zero (r, c).
func (e *munkres) augment(r, c int) {
	e.starredRows[r] = Assigned(c)
	for {
		prev, ok := e.starredCols[c].Get()
		e.starredCols[c] = Assigned(r)
		if !ok {
			break
		}
		// The star at (prev, c) moves to the prime of row prev.
		r = prev
		c, _ = e.primedRows[r].Get()
		e.starredRows[r] = Assigned(c)
	}

	var i, j int
	for i = range e.coveredRows {
		e.coveredRows[i] = false
		e.primedRows[i] = Unassigned
	}
	e.numberCoveredCols = 0
	for j = range e.coveredCols {
		e.primedCols[j] = Unassigned
		e.coveredCols[j] = e.starredCols[j].ok
		if e.coveredCols[j] {
			e.numberCoveredCols++
		}
	}
}

// adjust moves the duals by the smallest uncovered value h: +h on covered
// rows, −h on uncovered columns. Cells covered twice gain h, cells covered
// once are unchanged, uncovered cells lose h (and at least one becomes 0).
func (e *munkres) adjust(log zerolog.Logger) {
	h := e.minUncovered()

	var i, j int
	for i = 0; i < e.m.rows; i++ {
		row := e.m.cells[i]
		if e.coveredRows[i] {
			for j = 0; j < e.m.cols; j++ {
				if e.coveredCols[j] {
					row[j] += h
				}
			}
			continue
		}
		for j = 0; j < e.m.cols; j++ {
			if !e.coveredCols[j] {
				row[j] -= h
			}
		}
	}
	e.st.adjustments++
	log.Trace().Int("h", h).Msg("dual adjustment")
}

// minUncovered returns the smallest value in the uncovered region.
// The region is non-empty and zero-free whenever it is called. Costs are
// integers, so 1 is a floor that ends the scan early.
func (e *munkres) minUncovered() int {
	var (
		i, j  int
		found bool
		h     int
	)
	for i = 0; i < e.m.rows; i++ {
		if e.coveredRows[i] {
			continue
		}
		for j = 0; j < e.m.cols; j++ {
			if e.coveredCols[j] {
				continue
			}
			if v := e.m.cells[i][j]; !found || v < h {
				h, found = v, true
				if h == 1 {
					return h
				}
			}
		}
	}
	if !found {
		contractViolation("dual adjustment on an empty uncovered region")
	}

	return h
}
