package assignment

import "strconv"

// Index is an optional row or column index.
//
// The zero value is Unassigned. A real position is built with Assigned.
// Using a separate presence flag keeps "no partner" distinct from every
// legitimate index, whatever the size of the matrix.
type Index struct {
	v  int
	ok bool
}

// Unassigned marks a row or column without a partner.
var Unassigned = Index{}

// Assigned returns an Index holding i.
func Assigned(i int) Index {
	return Index{v: i, ok: true}
}

// Get returns the index and whether it is assigned.
func (x Index) Get() (int, bool) {
	return x.v, x.ok
}

// IsAssigned reports whether x holds an index.
func (x Index) IsAssigned() bool {
	return x.ok
}

// Int returns the index, or -1 when unassigned.
// Intended for display and interop only; -1 is never a valid position.
func (x Index) Int() int {
	if !x.ok {
		return -1
	}

	return x.v
}

// String renders the index, or "-" when unassigned.
func (x Index) String() string {
	if !x.ok {
		return "-"
	}

	return strconv.Itoa(x.v)
}

// Pair is one (row, column) assignment.
type Pair struct {
	Row int
	Col int
}

// Shape is the constraint a core solver places on its input matrix.
//
//   - ShapeAny: no constraint.
//   - ShapeSquare: rows == cols; anything else is a contract violation.
//   - ShapeWide: cols ≥ rows; taller inputs are transposed.
//   - ShapeTall: rows ≥ cols; wider inputs are transposed.
type Shape int

const (
	// ShapeAny accepts every matrix as-is.
	ShapeAny Shape = iota

	// ShapeSquare requires exactly as many rows as columns.
	ShapeSquare

	// ShapeWide requires at least as many columns as rows.
	ShapeWide

	// ShapeTall requires at least as many rows as columns.
	ShapeTall
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeAny:
		return "any"
	case ShapeSquare:
		return "square"
	case ShapeWide:
		return "wide"
	case ShapeTall:
		return "tall"
	default:
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
}

// accepts reports whether a rows×cols matrix satisfies s.
func (s Shape) accepts(rows, cols int) bool {
	switch s {
	case ShapeSquare:
		return rows == cols
	case ShapeWide:
		return cols >= rows
	case ShapeTall:
		return rows >= cols
	default:
		return true
	}
}
