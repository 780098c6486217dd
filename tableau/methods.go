// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: the public strength-aware constraint ops. Each builds a
// zero-form row via the rows package and funnels it through emit, which
// adds the error-variable pair unless the strength is Fixed.

package tableau

import (
	"github.com/katalvlaran/cassowary/internal/floatutil"
	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/rows"
)

// AddEquality adds `a = b + margin` at the given strength.
func (s *System) AddEquality(a, b *lattice.Variable, margin float64, strength lattice.Strength) error {
	return s.emit(rows.Equal(s.pool, a, b, margin), strength)
}

// AddEqualityConstant adds `v = constant` at the given strength.
func (s *System) AddEqualityConstant(v *lattice.Variable, constant float64, strength lattice.Strength) error {
	return s.emit(rows.EqualConstant(s.pool, v, constant), strength)
}

// AddGreaterThan adds `a >= b + margin` at the given strength. The
// inequality's own slack is never weighted in the goal; only the
// strength-pair emit adds gets summed there.
func (s *System) AddGreaterThan(a, b *lattice.Variable, margin float64, strength lattice.Strength) error {
	row, _ := rows.GreaterThanOrEqual(s.pool, a, b, margin)
	return s.emit(row, strength)
}

// AddLowerThan adds `a <= b + margin` at the given strength.
func (s *System) AddLowerThan(a, b *lattice.Variable, margin float64, strength lattice.Strength) error {
	row, _ := rows.LessThanOrEqual(s.pool, a, b, margin)
	return s.emit(row, strength)
}

// AddCentering adds the bias-weighted centering equation at the given
// strength.
func (s *System) AddCentering(begin, beginTarget *lattice.Variable, mBegin, bias float64, endTarget, end *lattice.Variable, mEnd float64, strength lattice.Strength) error {
	return s.emit(rows.Centering(s.pool, begin, beginTarget, mBegin, bias, endTarget, end, mEnd), strength)
}

// AddRatio adds `a - b = ratio*(c - d)` at the given strength.
func (s *System) AddRatio(a, b, c, d *lattice.Variable, ratio float64, strength lattice.Strength) error {
	return s.emit(rows.Ratio(s.pool, a, b, c, d, ratio), strength)
}

// CreateObjectVariable returns the Unrestricted variable bound to
// anchor, acquiring one the first time anchor is seen in this pass.
func (s *System) CreateObjectVariable(anchor any) *lattice.Variable {
	if v, ok := s.objectVars[anchor]; ok {
		return v
	}
	v := s.pool.Acquire(lattice.Unrestricted)
	s.objectVars[anchor] = v
	return v
}

// GetObjectVariableValue returns the rounded computed value of the
// variable bound to anchor, and whether anchor has ever been registered
// via CreateObjectVariable.
func (s *System) GetObjectVariableValue(anchor any) (int, bool) {
	v, ok := s.objectVars[anchor]
	if !ok {
		return 0, false
	}
	return floatutil.RoundToInt(v.Value()), true
}

// Reset discards every row, variable and object-variable binding,
// returning the System to the state NewSystem left it in.
func (s *System) Reset() {
	s.rows = nil
	s.goal = nil
	s.objectVars = make(map[any]*lattice.Variable)
	s.lastOutcome = Optimal
	s.pool.Reset()
}
