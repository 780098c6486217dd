// SPDX-License-Identifier: MIT
//
// File: axis.go
// Role: per-axis dimension-behavior and endpoint-connection rows — the
// bulk of spec.md §4.4.

package compiler

import (
	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/tableau"
	"github.com/katalvlaran/cassowary/widget"
)

func axisAnchors(axis widget.Axis) (start, end widget.AnchorType) {
	if axis == widget.Horizontal {
		return widget.Left, widget.Right
	}
	return widget.Top, widget.Bottom
}

func dimensionOf(w *widget.Widget, axis widget.Axis) (size, minSize float64, behavior widget.Behavior, matchDefault widget.MatchConstraintDefault) {
	if axis == widget.Horizontal {
		return w.Width, w.MinW, w.BehaviorH, w.MatchDefaultH
	}
	return w.Height, w.MinH, w.BehaviorV, w.MatchDefaultV
}

func matchPercentOf(w *widget.Widget, axis widget.Axis) float64 {
	if axis == widget.Horizontal {
		return w.MatchPercentH
	}
	return w.MatchPercentV
}

func biasOf(w *widget.Widget, axis widget.Axis) float64 {
	if axis == widget.Horizontal {
		return w.BiasH
	}
	return w.BiasV
}

func originOf(w *widget.Widget, axis widget.Axis) float64 {
	if axis == widget.Horizontal {
		return w.X
	}
	return w.Y
}

// compileAxis emits the dimension row (if any) and the endpoint
// connection rows for one axis of one widget.
func compileAxis(sys *tableau.System, pool *lattice.Pool, arena *widget.Arena, w *widget.Widget, axis widget.Axis) error {
	startType, endType := axisAnchors(axis)
	start := w.Anchor(startType)
	end := w.Anchor(endType)
	sv := start.Variable(pool)
	ev := end.Variable(pool)

	if w.Visibility == widget.Gone {
		if err := sys.AddEquality(ev, sv, 0, lattice.Fixed); err != nil {
			return err
		}
		return compileEndpoints(sys, pool, arena, w, axis, sv, ev, start, end)
	}

	size, minSize, behavior, matchDefault := dimensionOf(w, axis)
	parent := arena.Widget(w.Parent)

	switch behavior {
	case widget.Fixed:
		if err := sys.AddEquality(ev, sv, size, lattice.Fixed); err != nil {
			return err
		}
	case widget.WrapContent:
		if err := sys.AddEquality(ev, sv, 0, lattice.High); err != nil {
			return err
		}
		if err := sys.AddGreaterThan(ev, sv, minSize, lattice.Fixed); err != nil {
			return err
		}
	case widget.MatchParent:
		if parent != nil {
			_, _, parentBehavior, _ := dimensionOf(parent, axis)
			if parentBehavior != widget.WrapContent {
				pStart, pEnd := axisAnchors(axis)
				psv := parent.Anchor(pStart).Variable(pool)
				pev := parent.Anchor(pEnd).Variable(pool)
				if err := sys.AddEquality(sv, psv, 0, lattice.Fixed); err != nil {
					return err
				}
				if err := sys.AddEquality(ev, pev, 0, lattice.Fixed); err != nil {
					return err
				}
				return nil // both endpoints already pinned to the parent span
			}
		}
	case widget.MatchConstraint:
		switch matchDefault {
		case widget.MatchWrap:
			if err := sys.AddEquality(ev, sv, size, lattice.Low); err != nil {
				return err
			}
		case widget.MatchPercent:
			if parent != nil {
				_, pEnd := axisAnchors(axis)
				pev := parent.Anchor(pEnd).Variable(pool)
				if err := compilePercent(sys, pool, sv, ev, pev, matchPercentOf(w, axis)); err != nil {
					return err
				}
			}
		// MatchSpread and MatchRatio need no dimension row of their own:
		// SPREAD stretches purely from both endpoints pulling (below);
		// RATIO is handled by compileRatio once both axes are known.
		default:
		}
	}

	return compileEndpoints(sys, pool, arena, w, axis, sv, ev, start, end)
}

// compileEndpoints ties a widget's two endpoint variables to whatever
// they connect to: both connected uses bias-weighted centering, one
// connected anchors adjacent to that target, neither connected keeps
// the widget at its original coordinate.
func compileEndpoints(sys *tableau.System, pool *lattice.Pool, arena *widget.Arena, w *widget.Widget, axis widget.Axis, sv, ev *lattice.Variable, start, end *widget.Anchor) error {
	startConnected := start.Target != nil
	endConnected := end.Target != nil

	switch {
	case startConnected && endConnected:
		stV, stStrength, stMargin := resolveTarget(pool, arena, start)
		etV, _, etMargin := resolveTarget(pool, arena, end)
		return sys.AddCentering(sv, stV, stMargin, biasOf(w, axis), etV, ev, etMargin, stStrength)
	case startConnected:
		stV, stStrength, stMargin := resolveTarget(pool, arena, start)
		return sys.AddEquality(sv, stV, stMargin, stStrength)
	case endConnected:
		etV, etStrength, etMargin := resolveTarget(pool, arena, end)
		return sys.AddEquality(ev, etV, -etMargin, etStrength)
	default:
		return sys.AddEqualityConstant(sv, originOf(w, axis), lattice.Equality)
	}
}

// resolveTarget returns the target anchor's solver variable, the
// connection's strength, and the effective margin — goneMargin instead
// of margin when the target widget's visibility is Gone.
func resolveTarget(pool *lattice.Pool, arena *widget.Arena, anchor *widget.Anchor) (*lattice.Variable, lattice.Strength, float64) {
	target := arena.Widget(anchor.Target.Widget)
	targetVar := target.Anchor(anchor.Target.Type).Variable(pool)
	margin := anchor.Margin
	if target.Visibility == widget.Gone {
		margin = anchor.GoneMargin
	}
	return targetVar, anchor.Strength, margin
}
