// SPDX-License-Identifier: MIT
//
// File: readback.go
// Role: assign every variable its final computed value once BFS and
// descent have finished (or given up).

package tableau

import "github.com/katalvlaran/cassowary/internal/floatutil"

// readback zeroes every variable and then assigns each active row's
// pivot the row's constant. A variable that never became a pivot is a
// free variable fixed at zero by the rest of the system. A pivot value
// that slipped outside the sane pixel range (a sign of an unresolved
// pathological system) is clamped to zero rather than surfaced.
func (s *System) readback() {
	for _, v := range s.pool.Variables() {
		v.SetValue(0)
	}
	for _, r := range s.rows {
		if r.Pivot == nil {
			continue
		}
		val := r.Constant
		if !floatutil.IsSane(val) {
			val = 0
		}
		r.Pivot.SetValue(val)
	}
}
