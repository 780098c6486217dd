// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Minimize, the single entry point that ties rebuild, BFS,
// descent and readback together, plus the thin facade for it.

package tableau

import "errors"

// Minimize rebuilds the goal row from the pool's current ERROR
// variables, restores basic feasibility, descends to the optimum, and
// reads every variable's final value back onto itself. It never
// returns a non-nil error for an infeasible or slow-converging system —
// those are reported through Outcome so every variable still ends up
// with a defined value. A non-nil error here indicates a pivot was
// attempted on a variable with a zero coefficient, which signals a bug
// in row construction rather than a property of the input constraints.
func (s *System) Minimize() (Outcome, error) {
	s.goal = s.pool.CreateRow()
	s.rebuildGoalFromErrors()
	substituteBasics(s.goal)

	outcome := Optimal

	if err := s.enforceBFS(); err != nil {
		if errors.Is(err, ErrInfeasible) || errors.Is(err, ErrIterationCapExceeded) {
			outcome = BestEffort
			if s.log != nil {
				s.log.Warn("bfs restoration did not fully converge: " + err.Error())
			}
		} else {
			s.readback()
			s.lastOutcome = BestEffort
			return BestEffort, err
		}
	}

	if outcome == Optimal {
		if err := s.optimize(); err != nil {
			outcome = BestEffort
			if s.log != nil {
				s.log.Warn("descent did not fully converge: " + err.Error())
			}
		}
	}

	s.readback()
	s.lastOutcome = outcome

	return outcome, nil
}
