// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade over Pool occupancy.
// Policy: no algorithms here; see pool.go for allocation/reset logic.

package lattice

import "fmt"

// String renders Stats for log lines and test failure messages.
func (s Stats) String() string {
	return fmt.Sprintf("lattice.Stats{vars=%d rows=%d peakRows=%d}", s.ActiveVariables, s.ActiveRows, s.PeakRows)
}
