// Package assignment solves the linear assignment problem on integer cost
// matrices using the Hungarian (Kuhn–Munkres) method.
//
// 🚀 What is the assignment problem?
//
//	Given a cost matrix C where C[i][j] is the price of pairing row i with
//	column j, find a one-to-one matching between rows and columns whose
//	total cost is minimal. The matrix may be rectangular: the surplus rows
//	(or columns) simply stay unassigned.
//
//	  • Task ↔ worker scheduling
//	  • Track ↔ detection association
//	  • Resource ↔ request balancing
//
// ✨ Key features:
//   - exact optimum in O(n³) for an n×n problem
//   - rectangular inputs, handled by transposition (Munkres) or by
//     zero-cost padding (MunkresPadded)
//   - interchangeable reducers (rows, columns, rows then columns)
//   - explicit "unassigned" marker (Index), never a magic number
//   - stateless: every call owns a private copy of the matrix, so independent
//     problems can be solved concurrently (see SolveAll)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hungarian/assignment"
//
//	res, err := assignment.Solve([][]int{
//	    {2500, 4000, 3500},
//	    {4000, 6000, 3500},
//	    {2000, 4000, 2500},
//	})
//	if err != nil {
//	    // errors.Is(err, assignment.ErrInvalidInput)
//	}
//	fmt.Println(res.Cost())  // 9500
//	fmt.Println(res.Pairs()) // [{0 1} {1 2} {2 0}]
//
// Pipeline:
//
//	validated matrix → orientation adapter → reducer → core solver
//	                 → orientation adapter (inverse) → result formatter
//
// Performance:
//
//   - Time:   O(n³) worst case, n = max(rows, cols)
//   - Memory: O(rows·cols) for the private matrix copy
package assignment
