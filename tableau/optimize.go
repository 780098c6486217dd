// SPDX-License-Identifier: MIT
//
// File: optimize.go
// Role: Phase 2 — descend the goal row to its minimum by repeatedly
// entering a negative-coefficient variable and leaving via the
// steepest-ratio restricted row.

package tableau

import (
	"math"

	"github.com/katalvlaran/cassowary/internal/floatutil"
	"github.com/katalvlaran/cassowary/lattice"
)

// optimize repeatedly pivots in a goal variable with negative
// coefficient until none remain (the goal is at its minimum) or the
// iteration cap is hit.
func (s *System) optimize() error {
	tried := make(map[*lattice.Variable]bool)

	for iter := 0; iter < s.iterationCap; iter++ {
		entering := s.pickEnteringVariable(tried)
		if entering == nil {
			return nil
		}
		tried[entering] = true

		leaving := s.pickLeavingRow(entering)
		if leaving == nil {
			// No restricted row can absorb this column without going
			// negative; it is effectively unbounded for this column. Leave
			// it out of further consideration and try the next candidate.
			continue
		}

		if err := s.pivotAndPropagate(leaving, entering); err != nil {
			return err
		}
		tried = make(map[*lattice.Variable]bool)
	}
	return ErrIterationCapExceeded
}

// pickEnteringVariable returns the lowest-id goal variable with a
// negative coefficient that has not already been tried this round.
func (s *System) pickEnteringVariable(tried map[*lattice.Variable]bool) *lattice.Variable {
	var chosen *lattice.Variable
	s.goal.Coeffs.Each(func(v *lattice.Variable, c float64) bool {
		if c < -floatutil.Epsilon && !tried[v] && (chosen == nil || v.ID() < chosen.ID()) {
			chosen = v
		}
		return true
	})
	return chosen
}

// pickLeavingRow finds, among rows with a restricted pivot and a
// negative coefficient for v, the one minimizing (-constant)/coeff,
// ties broken by the leaving pivot's lower id.
func (s *System) pickLeavingRow(v *lattice.Variable) *lattice.Row {
	var best *lattice.Row
	bestRatio := math.Inf(1)

	for _, r := range s.rows {
		if r.Pivot == nil || !r.Pivot.Kind().Restricted() {
			continue
		}
		a, ok := r.Coeffs.Get(v)
		if !ok || a >= -floatutil.Epsilon {
			continue
		}
		ratio := (-r.Constant) / a
		if best == nil || ratio < bestRatio-floatutil.Epsilon ||
			(math.Abs(ratio-bestRatio) <= floatutil.Epsilon && r.Pivot.ID() < best.Pivot.ID()) {
			bestRatio = ratio
			best = r
		}
	}
	return best
}
