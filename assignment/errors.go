// SPDX-License-Identifier: MIT
// Package assignment: sentinel error set.
// Algorithms return these sentinels (or typed errors matching them through
// errors.Is). User-triggered conditions never panic; ErrContractViolation is
// the only sentinel delivered through a panic, because it signals a broken
// composition of adapter and core solver rather than bad input.

package assignment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a cost matrix is absent, empty,
	// non-rectangular or holds a negative cell.
	ErrInvalidInput = errors.New("assignment: invalid cost matrix")

	// ErrContractViolation marks a core solver receiving a matrix that breaks
	// its declared shape or reduction precondition.
	ErrContractViolation = errors.New("assignment: contract violation")

	// ErrOutOfRange indicates that a row or column index is outside the result bounds.
	ErrOutOfRange = errors.New("assignment: index out of range")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the enumeration.
	ErrUnknownAlgorithm = errors.New("assignment: unknown algorithm")

	// ErrUnknownReducer indicates a Reducer value outside the enumeration.
	ErrUnknownReducer = errors.New("assignment: unknown reducer")
)

// InputError describes why a cost matrix was rejected.
// Row and Col are -1 when the problem is not tied to a cell.
type InputError struct {
	Row, Col int
	Reason   string
}

func (e *InputError) Error() string {
	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("assignment: invalid cost matrix: cell [%d][%d]: %s", e.Row, e.Col, e.Reason)
	case e.Row >= 0:
		return fmt.Sprintf("assignment: invalid cost matrix: row %d: %s", e.Row, e.Reason)
	default:
		return fmt.Sprintf("assignment: invalid cost matrix: %s", e.Reason)
	}
}

// Is reports ErrInvalidInput as the matching sentinel.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func inputError(row, col int, format string, args ...any) error {
	return &InputError{Row: row, Col: col, Reason: fmt.Sprintf(format, args...)}
}

// contractViolation panics with an error wrapping ErrContractViolation.
func contractViolation(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...)))
}
