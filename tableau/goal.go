// SPDX-License-Identifier: MIT
//
// File: goal.go
// Role: building the objective row Minimize descends on, fresh every
// call, from whichever ERROR variables are currently live in the pool.

package tableau

import "github.com/katalvlaran/cassowary/lattice"

// rebuildGoalFromErrors sets s.goal's coefficients to the weighted sum
// of every currently active ERROR variable. Some of those variables may
// already be basic elsewhere; substituteBasics cleans that up right
// after this runs.
func (s *System) rebuildGoalFromErrors() {
	for _, v := range s.pool.Variables() {
		if v.Kind() == lattice.Error {
			s.goal.Coeffs.Set(v, v.Strength().Weight())
		}
	}
}
