// SPDX-License-Identifier: MIT
package tableau

import "errors"

var (
	// ErrInvalidPivot is returned when pivotRow is asked to pivot a row on
	// a variable that does not appear in that row's coefficients.
	ErrInvalidPivot = errors.New("tableau: pivot variable not present in row")

	// ErrInfeasible is the internal signal that BFS restoration ran out
	// of candidate columns for a row whose constant is negative. Minimize
	// never surfaces this as a Go error; it reports Outcome.BestEffort.
	ErrInfeasible = errors.New("tableau: no feasible pivot column for row")

	// ErrIterationCapExceeded is the internal signal that BFS restoration
	// or the descent loop hit the iteration cap without converging.
	ErrIterationCapExceeded = errors.New("tableau: iteration cap exceeded")
)
