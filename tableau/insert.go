// SPDX-License-Identifier: MIT
//
// File: insert.go
// Role: the row-replacement-on-add algorithm (insertRow) and the
// strength-weighted error-term wrapper (emit) that every high-level
// constraint op funnels through before reaching AddConstraint.

package tableau

import "github.com/katalvlaran/cassowary/lattice"

// insertRow substitutes out any already-basic variables, normalizes the
// row to a non-negative constant, picks a pivot (introducing an extra
// slack variable if the row offers no eligible candidate), pivots,
// propagates the new definition to every row that referenced the
// chosen variable, and records the row as active. A row that reduces
// to a bare constant (no variables left after substitution) is
// discarded: it is either already satisfied or unsatisfiable, and
// either way there is nothing left to pivot.
func (s *System) insertRow(row *lattice.Row) error {
	substituteBasics(row)

	if row.Constant < 0 {
		row.Coeffs.Negate()
		row.Constant = -row.Constant
	}

	if row.Coeffs.Len() == 0 {
		s.pool.ReleaseRow(row)
		return nil
	}

	v, ok := pickRowVariable(row)
	if !ok {
		extra := s.pool.Acquire(lattice.Slack)
		row.Coeffs.Set(extra, 1)
		v = extra
	}

	if err := s.pivotAndPropagate(row, v); err != nil {
		return err
	}

	s.rows = append(s.rows, row)
	return nil
}

// emit wraps base with a strength-weighted error-variable pair before
// inserting it, unless strength is Fixed: a Fixed constraint is hard
// and never gets error variables in the first place. The caller has
// already built base as a zero-form row via the rows package.
func (s *System) emit(base *lattice.Row, strength lattice.Strength) error {
	if strength < lattice.Fixed {
		plus := s.pool.AcquireWithStrength(lattice.Error, strength)
		minus := s.pool.AcquireWithStrength(lattice.Error, strength)
		base.Coeffs.Set(plus, 1)
		base.Coeffs.Set(minus, -1)
	}
	return s.insertRow(base)
}

// AddConstraint inserts an already-fully-built row as-is, with no
// strength wrapping. Used for constraint families that build their own
// error/slack terms in the rows package (chains, barriers, baseline,
// circular positioning) and by the two high-level ops below once
// they've finished shaping their base row.
func (s *System) AddConstraint(row *lattice.Row) error {
	return s.insertRow(row)
}
