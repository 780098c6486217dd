// SPDX-License-Identifier: MIT
//
// File: extra.go
// Role: percent/ratio/circular/baseline/center-anchor rows and the two
// Helper widget compilers (Guideline, Barrier).

package compiler

import (
	"math"

	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/rows"
	"github.com/katalvlaran/cassowary/tableau"
	"github.com/katalvlaran/cassowary/widget"
)

// compilePercent emits form #7 (spec §4.3): the driven span is a
// fraction of the parent's span. The widget's own start is anchored to
// the parent start separately, via the normal endpoint connection.
func compilePercent(sys *tableau.System, pool *lattice.Pool, sv, ev, parentEnd *lattice.Variable, percent float64) error {
	return sys.AddConstraint(rows.Percent(pool, ev, sv, parentEnd, percent))
}

// compileCenterAnchors binds CENTER_X and CENTER_Y to the midpoint of
// each axis's endpoints, so other widgets may connect to them.
func compileCenterAnchors(sys *tableau.System, pool *lattice.Pool, w *widget.Widget) error {
	cx := w.Anchor(widget.CenterX).Variable(pool)
	left := w.Anchor(widget.Left).Variable(pool)
	right := w.Anchor(widget.Right).Variable(pool)
	rowX := pool.CreateRow()
	rowX.Coeffs.Set(cx, 1)
	rowX.Coeffs.Set(left, -0.5)
	rowX.Coeffs.Set(right, -0.5)
	if err := sys.AddConstraint(rowX); err != nil {
		return err
	}

	cy := w.Anchor(widget.CenterY).Variable(pool)
	top := w.Anchor(widget.Top).Variable(pool)
	bottom := w.Anchor(widget.Bottom).Variable(pool)
	rowY := pool.CreateRow()
	rowY.Coeffs.Set(cy, 1)
	rowY.Coeffs.Set(top, -0.5)
	rowY.Coeffs.Set(bottom, -0.5)
	return sys.AddConstraint(rowY)
}

// compileBaseline emits the self-definition `baseline = top +
// baselineDistance` (form #11, always, FIXED), plus an equality tying
// this widget's baseline to its connection target, if any.
func compileBaseline(sys *tableau.System, pool *lattice.Pool, arena *widget.Arena, w *widget.Widget) error {
	baseline := w.Anchor(widget.Baseline).Variable(pool)
	top := w.Anchor(widget.Top).Variable(pool)
	if err := sys.AddConstraint(rows.Baseline(pool, baseline, top, w.BaselineDistance)); err != nil {
		return err
	}

	target := w.Anchor(widget.Baseline).Target
	if target == nil {
		return nil
	}
	tv, strength, margin := resolveTarget(pool, arena, w.Anchor(widget.Baseline))
	return sys.AddEquality(baseline, tv, margin, strength)
}

// compileRatio emits form #6 between the ratio-driven axis's span and
// the other axis's span. RatioValue is width:height whichever axis is
// driven.
func compileRatio(sys *tableau.System, w *widget.Widget) error {
	left := w.Anchor(widget.Left).Variable(nil)
	right := w.Anchor(widget.Right).Variable(nil)
	top := w.Anchor(widget.Top).Variable(nil)
	bottom := w.Anchor(widget.Bottom).Variable(nil)

	if w.RatioDriven == widget.Horizontal {
		return sys.AddRatio(right, left, bottom, top, w.RatioValue, lattice.High)
	}
	return sys.AddRatio(bottom, top, right, left, 1/w.RatioValue, lattice.High)
}

// compileCircular emits the two-equality circular positioning shape
// (form #9) tying this widget's center to its target's center.
func compileCircular(sys *tableau.System, arena *widget.Arena, w *widget.Widget) error {
	target := arena.Widget(w.CircularTarget)
	if target == nil {
		return nil
	}
	theta := w.CircularAngleDeg * math.Pi / 180

	pool := sys.Pool()
	rowX, rowY := rows.Circular(
		pool,
		target.Anchor(widget.CenterX).Variable(pool),
		target.Anchor(widget.CenterY).Variable(pool),
		w.Anchor(widget.CenterX).Variable(pool),
		w.Anchor(widget.CenterY).Variable(pool),
		theta, w.CircularRadius,
	)
	if err := sys.AddConstraint(rowX); err != nil {
		return err
	}
	return sys.AddConstraint(rowY)
}

// compileGuideline pins a guideline's (zero-width) position to a
// fraction, or a pixel offset from one end, of the parent's span along
// its orientation.
func compileGuideline(sys *tableau.System, pool *lattice.Pool, arena *widget.Arena, w *widget.Widget) error {
	startType, endType := axisAnchors(w.GuidelineOrientation)
	pos := w.Anchor(startType).Variable(pool)
	if err := sys.AddEquality(w.Anchor(endType).Variable(pool), pos, 0, lattice.Fixed); err != nil {
		return err
	}

	parent := arena.Widget(w.Parent)
	if parent == nil {
		return nil
	}
	pStart := parent.Anchor(startType).Variable(pool)
	pEnd := parent.Anchor(endType).Variable(pool)

	switch w.GuidelineRelative.Mode {
	case widget.GuidelineBegin:
		return sys.AddEquality(pos, pStart, w.GuidelineRelative.Value, lattice.Fixed)
	case widget.GuidelineEnd:
		return sys.AddEquality(pEnd, pos, w.GuidelineRelative.Value, lattice.Fixed)
	default: // GuidelinePercent
		return sys.AddConstraint(rows.Percent(pool, pos, pStart, pEnd, w.GuidelineRelative.Value))
	}
}

// compileBarrier pins a barrier's (zero-width) position to the extreme
// of its referenced children's corresponding anchor.
func compileBarrier(sys *tableau.System, pool *lattice.Pool, arena *widget.Arena, w *widget.Widget) error {
	edgeType, oppositeType := axisAnchors(w.BarrierAxis)
	v := w.Anchor(edgeType).Variable(pool)
	if err := sys.AddEquality(w.Anchor(oppositeType).Variable(pool), v, 0, lattice.Fixed); err != nil {
		return err
	}

	members := make([]*lattice.Variable, 0, len(w.BarrierChildren))
	for _, childID := range w.BarrierChildren {
		child := arena.Widget(childID)
		if child == nil {
			continue
		}
		members = append(members, child.Anchor(edgeType).Variable(pool))
	}

	builtRows, _ := rows.Barrier(pool, v, members, w.BarrierSide == widget.BarrierMax)
	for _, r := range builtRows {
		if err := sys.AddConstraint(r); err != nil {
			return err
		}
	}
	return nil
}
