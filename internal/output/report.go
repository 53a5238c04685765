package output

import "github.com/katalvlaran/hungarian/assignment"

// Pair is one matched cell of a report.
type Pair struct {
	Row  int `json:"row" yaml:"row"`
	Col  int `json:"col" yaml:"col"`
	Cost int `json:"cost" yaml:"cost"`
}

// Report is the serializable view of one solve. Unassigned entries of the
// assignment slices encode as null.
type Report struct {
	Rows             int    `json:"rows" yaml:"rows"`
	Cols             int    `json:"cols" yaml:"cols"`
	Algorithm        string `json:"algorithm" yaml:"algorithm"`
	Reducer          string `json:"reducer" yaml:"reducer"`
	Cost             int    `json:"cost" yaml:"cost"`
	Pairs            []Pair `json:"pairs" yaml:"pairs"`
	RowAssignment    []*int `json:"row_assignment" yaml:"row_assignment"`
	ColumnAssignment []*int `json:"column_assignment" yaml:"column_assignment"`
}

// NewReport builds a report for res, solved from costs with the given pipeline.
func NewReport(costs [][]int, res *assignment.Result, alg assignment.Algorithm, red assignment.Reducer) Report {
	pairs := res.Pairs()
	r := Report{
		Rows:             res.Rows(),
		Cols:             res.Cols(),
		Algorithm:        alg.String(),
		Reducer:          red.String(),
		Cost:             res.Cost(),
		Pairs:            make([]Pair, len(pairs)),
		RowAssignment:    optional(res.RowAssignments()),
		ColumnAssignment: optional(res.ColumnAssignments()),
	}
	for k, p := range pairs {
		r.Pairs[k] = Pair{Row: p.Row, Col: p.Col, Cost: costs[p.Row][p.Col]}
	}

	return r
}

func optional(v []assignment.Index) []*int {
	out := make([]*int, len(v))
	for i, x := range v {
		if j, ok := x.Get(); ok {
			out[i] = &j
		}
	}

	return out
}
