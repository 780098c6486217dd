// SPDX-License-Identifier: MIT
//
// File: pivot.go
// Role: the single-row pivot transform, candidate selection, and the
// propagation step that keeps every other row's RHS free of a variable
// the moment it becomes basic.

package tableau

import (
	"fmt"

	"github.com/katalvlaran/cassowary/internal/floatutil"
	"github.com/katalvlaran/cassowary/lattice"
)

// pickRowVariable chooses which variable in row's coefficients should
// become row's new pivot: an UNRESTRICTED variable with a negative
// coefficient first, then any UNRESTRICTED variable, then a RESTRICTED
// variable with a negative coefficient. Ties break toward the lower id
// so the choice is deterministic. Reports false if row has entries but
// none qualify.
func pickRowVariable(row *lattice.Row) (*lattice.Variable, bool) {
	var negUnrestricted, anyUnrestricted, negRestricted *lattice.Variable

	row.Coeffs.Each(func(v *lattice.Variable, coeff float64) bool {
		switch {
		case v.Kind() == lattice.Unrestricted:
			if coeff < -floatutil.Epsilon && (negUnrestricted == nil || v.ID() < negUnrestricted.ID()) {
				negUnrestricted = v
			}
			if anyUnrestricted == nil || v.ID() < anyUnrestricted.ID() {
				anyUnrestricted = v
			}
		case v.Kind().Restricted():
			if coeff < -floatutil.Epsilon && (negRestricted == nil || v.ID() < negRestricted.ID()) {
				negRestricted = v
			}
		}
		return true
	})

	switch {
	case negUnrestricted != nil:
		return negUnrestricted, true
	case anyUnrestricted != nil:
		return anyUnrestricted, true
	case negRestricted != nil:
		return negRestricted, true
	default:
		return nil, false
	}
}

// pivotRow rewrites row so that v becomes its pivot: `v = constant + Σ
// coeff·var` is solved for v and the row is restated in terms of
// everything else. If row already had a different pivot, that old
// pivot is folded back into the coefficient map with coefficient -1 (it
// is now just another free variable, satisfied by this same equation).
func pivotRow(row *lattice.Row, v *lattice.Variable) error {
	a, ok := row.Coeffs.Get(v)
	if !ok || floatutil.IsZero(a) {
		return fmt.Errorf("tableau: variable %d has no nonzero coefficient in row: %w", v.ID(), ErrInvalidPivot)
	}

	old := row.Pivot
	row.Coeffs.Remove(v)
	if old != nil {
		row.Coeffs.Set(old, -1)
		old.SetDefiningRow(nil)
	}

	divisor := -a
	row.Constant = floatutil.Clamp(row.Constant / divisor)
	if err := row.Coeffs.DivideBy(divisor); err != nil {
		return err
	}

	row.Pivot = v
	v.SetDefiningRow(row)
	row.RecomputeSimpleDefinition()

	return nil
}

// pivotAndPropagate pivots row on v, then substitutes v's new
// definition into every other row (and the goal, which is itself an
// ordinary tracked row) that still mentions v on its RHS — maintaining
// the invariant that no row's coefficients ever reference a currently
// basic variable.
func (s *System) pivotAndPropagate(row *lattice.Row, v *lattice.Variable) error {
	if err := pivotRow(row, v); err != nil {
		return err
	}

	clients := v.ClientRows()
	affected := make([]*lattice.Row, 0, len(clients))
	for r := range clients {
		if r != row {
			affected = append(affected, r)
		}
	}

	for _, q := range affected {
		coeff, ok := q.Coeffs.Get(v)
		if !ok {
			continue
		}
		q.Coeffs.Remove(v)
		q.Constant = floatutil.Clamp(q.Constant + coeff*row.Constant)
		q.Coeffs.MergeScaled(row.Coeffs, coeff)
	}

	return nil
}

// substituteBasics eliminates every already-basic (pivoted) variable
// from row's coefficients by folding in that variable's defining row,
// repeating until row's RHS mentions only free variables. Used both
// when inserting a brand-new row and when preparing the goal row before
// BFS/descent.
func substituteBasics(row *lattice.Row) {
	for {
		var target *lattice.Variable
		var coeff float64

		row.Coeffs.Each(func(v *lattice.Variable, c float64) bool {
			if v.DefiningRow() != nil {
				target, coeff = v, c
				return false
			}
			return true
		})
		if target == nil {
			return
		}

		defining := target.DefiningRow()
		row.Coeffs.Remove(target)
		row.Constant = floatutil.Clamp(row.Constant + coeff*defining.Constant)
		row.Coeffs.MergeScaled(defining.Coeffs, coeff)
	}
}
