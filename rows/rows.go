// SPDX-License-Identifier: MIT
//
// File: rows.go
// Role: the twelve named row shapes, one constructor each.

package rows

import (
	"math"

	"github.com/katalvlaran/cassowary/lattice"
)

// Equal builds `a - b - margin = 0`, i.e. a = b + margin.
func Equal(pool *lattice.Pool, a, b *lattice.Variable, margin float64) *lattice.Row {
	row := pool.CreateRow()
	row.Coeffs.Set(a, 1)
	row.Coeffs.Set(b, -1)
	row.Constant = -margin
	return row
}

// EqualConstant builds `v - constant = 0`.
func EqualConstant(pool *lattice.Pool, v *lattice.Variable, constant float64) *lattice.Row {
	row := pool.CreateRow()
	row.Coeffs.Set(v, 1)
	row.Constant = -constant
	return row
}

// GreaterThanOrEqual builds `a - b - s - margin = 0, s >= 0`, i.e.
// a >= b + margin. Returns the row and the slack variable it acquired.
func GreaterThanOrEqual(pool *lattice.Pool, a, b *lattice.Variable, margin float64) (*lattice.Row, *lattice.Variable) {
	slack := pool.Acquire(lattice.Slack)
	row := pool.CreateRow()
	row.Coeffs.Set(a, 1)
	row.Coeffs.Set(b, -1)
	row.Coeffs.Set(slack, -1)
	row.Constant = -margin
	return row, slack
}

// LessThanOrEqual builds `a - b + s - margin = 0, s >= 0`, i.e.
// a <= b + margin. Returns the row and the slack variable it acquired.
func LessThanOrEqual(pool *lattice.Pool, a, b *lattice.Variable, margin float64) (*lattice.Row, *lattice.Variable) {
	slack := pool.Acquire(lattice.Slack)
	row := pool.CreateRow()
	row.Coeffs.Set(a, 1)
	row.Coeffs.Set(b, -1)
	row.Coeffs.Set(slack, 1)
	row.Constant = -margin
	return row, slack
}

// Centering builds the bias-weighted centering equation: begin's gap
// from beginTarget (after mBegin) balances, proportionally to bias,
// end's gap from endTarget (after mEnd). bias == 0.5 centers evenly;
// bias approaching 1 pulls slack toward the end side.
func Centering(pool *lattice.Pool, begin, beginTarget *lattice.Variable, mBegin, bias float64, endTarget, end *lattice.Variable, mEnd float64) *lattice.Row {
	row := pool.CreateRow()
	wB, wE := 1-bias, bias
	row.Coeffs.Set(begin, wB)
	row.Coeffs.Set(beginTarget, -wB)
	row.Coeffs.Set(end, wE)
	row.Coeffs.Set(endTarget, -wE)
	row.Constant = wB*mBegin - wE*mEnd
	return row
}

// Ratio builds `a - b - ratio*(c - d) = 0`, i.e. (a-b) : (c-d) == ratio : 1.
func Ratio(pool *lattice.Pool, a, b, c, d *lattice.Variable, ratio float64) *lattice.Row {
	row := pool.CreateRow()
	row.Coeffs.Set(a, 1)
	row.Coeffs.Set(b, -1)
	row.Coeffs.Set(c, -ratio)
	row.Coeffs.Set(d, ratio)
	return row
}

// Percent builds `a - (1-p)*b - p*c = 0`, the MATCH_CONSTRAINT
// percent-of-container-span shape.
func Percent(pool *lattice.Pool, a, b, c *lattice.Variable, percent float64) *lattice.Row {
	row := pool.CreateRow()
	row.Coeffs.Set(a, 1)
	row.Coeffs.Set(b, -(1 - percent))
	row.Coeffs.Set(c, -percent)
	return row
}

// WeightedEqualDimensions builds the chain weight-distribution shape:
// `(endI-startI)*weightJ - (endJ-startJ)*weightI = 0`, so two spans
// split available space proportionally to their declared weights.
func WeightedEqualDimensions(pool *lattice.Pool, startI, endI, startJ, endJ *lattice.Variable, weightI, weightJ float64) *lattice.Row {
	row := pool.CreateRow()
	row.Coeffs.Set(endI, weightJ)
	row.Coeffs.Set(startI, -weightJ)
	row.Coeffs.Set(endJ, -weightI)
	row.Coeffs.Set(startJ, weightI)
	return row
}

// Circular decomposes a circular (angle, radius) constraint between two
// object-center variable pairs into its x and y equalities. theta is in
// radians.
func Circular(pool *lattice.Pool, ax, ay, bx, by *lattice.Variable, theta, radius float64) (*lattice.Row, *lattice.Row) {
	rowX := pool.CreateRow()
	rowX.Coeffs.Set(bx, 1)
	rowX.Coeffs.Set(ax, -1)
	rowX.Constant = -radius * math.Cos(theta)

	rowY := pool.CreateRow()
	rowY.Coeffs.Set(by, 1)
	rowY.Coeffs.Set(ay, -1)
	rowY.Constant = -radius * math.Sin(theta)

	return rowX, rowY
}

// Barrier builds one inequality row per member, pinning v to be the
// extreme (max when isMax, else min) of the member anchors. Returns one
// row and its slack variable per member.
func Barrier(pool *lattice.Pool, v *lattice.Variable, members []*lattice.Variable, isMax bool) ([]*lattice.Row, []*lattice.Variable) {
	rowsOut := make([]*lattice.Row, 0, len(members))
	slacks := make([]*lattice.Variable, 0, len(members))
	for _, m := range members {
		var row *lattice.Row
		var slack *lattice.Variable
		if isMax {
			row, slack = GreaterThanOrEqual(pool, v, m, 0)
		} else {
			row, slack = LessThanOrEqual(pool, v, m, 0)
		}
		rowsOut = append(rowsOut, row)
		slacks = append(slacks, slack)
	}
	return rowsOut, slacks
}

// Baseline builds `baseline - top - baselineDistance = 0`.
func Baseline(pool *lattice.Pool, baseline, top *lattice.Variable, baselineDistance float64) *lattice.Row {
	row := pool.CreateRow()
	row.Coeffs.Set(baseline, 1)
	row.Coeffs.Set(top, -1)
	row.Constant = -baselineDistance
	return row
}

// AnglePair builds the two-anchor rotational shape:
// `(aTop+aBottom)/2 = (bTop+bBottom)/2 - component`.
func AnglePair(pool *lattice.Pool, aTop, aBottom, bTop, bBottom *lattice.Variable, component float64) *lattice.Row {
	row := pool.CreateRow()
	row.Coeffs.Set(aTop, 0.5)
	row.Coeffs.Set(aBottom, 0.5)
	row.Coeffs.Set(bTop, -0.5)
	row.Coeffs.Set(bBottom, -0.5)
	row.Constant = component
	return row
}
