// Package assignment_test provides runnable examples for the assignment solver.
package assignment_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hungarian/assignment"
)

// ExampleSolve assigns three workers to three jobs at minimal cost.
func ExampleSolve() {
	costs := [][]int{
		{2500, 4000, 3500},
		{4000, 6000, 3500},
		{2000, 4000, 2500},
	}

	res, err := assignment.Solve(costs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("rows:", res.RowAssignments())
	fmt.Println("cols:", res.ColumnAssignments())
	fmt.Println("pairs:", res.Pairs())
	fmt.Println("cost:", res.Cost())
	// Output:
	// rows: [1 2 0]
	// cols: [2 0 1]
	// pairs: [{0 1} {1 2} {2 0}]
	// cost: 9500
}

// ExampleSolve_rectangular leaves one of five rows unassigned.
func ExampleSolve_rectangular() {
	costs := [][]int{
		{1, 2, 25, 13},
		{5, 7, 25, 15},
		{10, 13, 16, 14},
		{17, 21, 11, 18},
		{15, 15, 15, 13},
	}

	res, _ := assignment.Solve(costs)
	fmt.Println("rows:", res.RowAssignments())
	fmt.Println("cols:", res.ColumnAssignments())
	fmt.Println("cost:", res.Cost())
	// Output:
	// rows: [1 0 - 2 3]
	// cols: [1 0 3 4]
	// cost: 31
}

// ExampleWithAlgorithm pads a tall matrix with a zero-cost dummy column.
func ExampleWithAlgorithm() {
	costs := [][]int{
		{70, 40, 20},
		{65, 60, 45},
		{30, 45, 50},
		{25, 30, 55},
	}

	res, _ := assignment.Solve(costs, assignment.WithAlgorithm(assignment.MunkresPadded))
	fmt.Println("rows:", res.RowAssignments())
	fmt.Println("cost:", res.Cost())
	// Output:
	// rows: [2 - 0 1]
	// cost: 80
}

// ExampleSolveAll solves a batch on two workers.
func ExampleSolveAll() {
	problems := [][][]int{
		{{4, 1}, {2, 3}},
		{{7}},
		{{5, 1, 3}},
	}

	results, err := assignment.SolveAll(context.Background(), problems, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, res := range results {
		fmt.Printf("problem %d: cost %d\n", i, res.Cost())
	}
	// Output:
	// problem 0: cost 3
	// problem 1: cost 7
	// problem 2: cost 1
}
