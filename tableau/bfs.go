// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Phase 1 — restore basic feasibility. Every row pivoted on a
// restricted (Slack/Error) variable must end up with a non-negative
// constant before descent can trust the tableau.

package tableau

import (
	"math"

	"github.com/katalvlaran/cassowary/internal/floatutil"
	"github.com/katalvlaran/cassowary/lattice"
)

// enforceBFS repeatedly finds the most-infeasible restricted-pivot row
// and pivots it on the column that restores the least ground, using the
// goal row's coefficients to prefer the column any eventual descent
// would least want to disturb. Returns ErrInfeasible if some row has no
// positive-coefficient column left to pivot on, or
// ErrIterationCapExceeded if restoration does not converge in time.
func (s *System) enforceBFS() error {
	for iter := 0; iter < s.iterationCap; iter++ {
		row := s.mostInfeasibleRow()
		if row == nil {
			return nil
		}

		v, ok := pickBFSColumn(row, s.goal)
		if !ok {
			return ErrInfeasible
		}

		if err := s.pivotAndPropagate(row, v); err != nil {
			return err
		}
	}
	return ErrIterationCapExceeded
}

// mostInfeasibleRow returns the active row with a restricted pivot and
// the most negative constant, or nil if every such row already
// satisfies the non-negativity invariant.
func (s *System) mostInfeasibleRow() *lattice.Row {
	var worst *lattice.Row
	for _, r := range s.rows {
		if r.Pivot == nil || !r.Pivot.Kind().Restricted() {
			continue
		}
		if r.Constant < -floatutil.Epsilon {
			if worst == nil || r.Constant < worst.Constant {
				worst = r
			}
		}
	}
	return worst
}

// pickBFSColumn chooses the positive-coefficient column in row that
// minimizes goal-coefficient / row-coefficient, ties broken by lower
// variable id. A variable absent from goal is treated as coefficient 0.
func pickBFSColumn(row *lattice.Row, goal *lattice.Row) (*lattice.Variable, bool) {
	var chosen *lattice.Variable
	bestRatio := math.Inf(1)

	row.Coeffs.Each(func(v *lattice.Variable, a float64) bool {
		if a <= floatutil.Epsilon {
			return true
		}
		d, _ := goal.Coeffs.Get(v)
		ratio := d / a
		if chosen == nil || ratio < bestRatio-floatutil.Epsilon ||
			(math.Abs(ratio-bestRatio) <= floatutil.Epsilon && v.ID() < chosen.ID()) {
			bestRatio = ratio
			chosen = v
		}
		return true
	})

	return chosen, chosen != nil
}
