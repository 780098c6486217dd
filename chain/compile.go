// SPDX-License-Identifier: MIT
//
// File: compile.go
// Role: emitting the style-specific rows a detected Chain needs beyond
// the default per-widget endpoint rows package compiler already
// installs for every link. Those default rows keep running for every
// member (a chain is, after all, just a sequence of ordinary anchor
// connections); what follows layers stronger rows on top so the
// chain's declared style wins the weighted tug-of-war, the same way
// any other strength conflict in this system resolves.

package chain

import (
	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/rows"
	"github.com/katalvlaran/cassowary/tableau"
	"github.com/katalvlaran/cassowary/widget"
)

// Compile emits c's style-specific rows into sys.
func Compile(sys *tableau.System, arena *widget.Arena, c Chain) error {
	if len(c.Members) < 2 {
		return nil
	}
	startType, endType := startEnd(c.Axis)
	head := c.Head(arena)
	style := chainStyle(head, c.Axis)

	switch style {
	case widget.Packed:
		if err := compilePacked(sys, arena, c, startType, endType); err != nil {
			return err
		}
	case widget.SpreadInside:
		if err := compileSpreadInside(sys, arena, c, startType, endType); err != nil {
			return err
		}
	default: // widget.Spread
		if err := compileSpread(sys, arena, c, startType, endType); err != nil {
			return err
		}
	}

	return compileWeights(sys, arena, c, startType, endType)
}

func chainStyle(head *widget.Widget, axis widget.Axis) widget.ChainStyle {
	if axis == widget.Horizontal {
		return head.ChainStyleH
	}
	return head.ChainStyleV
}

func biasOf(w *widget.Widget, axis widget.Axis) float64 {
	if axis == widget.Horizontal {
		return w.BiasH
	}
	return w.BiasV
}

func weightOf(w *widget.Widget, axis widget.Axis) float64 {
	if axis == widget.Horizontal {
		return w.WeightH
	}
	return w.WeightV
}

func behaviorOf(w *widget.Widget, axis widget.Axis) widget.Behavior {
	if axis == widget.Horizontal {
		return w.BehaviorH
	}
	return w.BehaviorV
}

// externalTarget returns the variable an anchor outside the chain
// connects to, and whether one exists.
func externalTarget(arena *widget.Arena, anchor *widget.Anchor, pool *lattice.Pool) (*lattice.Variable, float64, lattice.Strength, bool) {
	if anchor.Target == nil {
		return nil, 0, lattice.None, false
	}
	target := arena.Widget(anchor.Target.Widget)
	if target == nil {
		return nil, 0, lattice.None, false
	}
	margin := anchor.Margin
	if target.Visibility == widget.Gone {
		margin = anchor.GoneMargin
	}
	return target.Anchor(anchor.Target.Type).Variable(pool), margin, anchor.Strength, true
}

// compilePacked re-asserts sequential FIXED adjacency (dominating
// whatever default-strength centering the per-widget pass installed
// for interior links) and centers the packed group as a single unit
// using the head's bias.
func compilePacked(sys *tableau.System, arena *widget.Arena, c Chain, startType, endType widget.AnchorType) error {
	pool := sys.Pool()
	for i := 0; i+1 < len(c.Members); i++ {
		cur := arena.Widget(c.Members[i])
		nxt := arena.Widget(c.Members[i+1])
		connecting := nxt.Anchor(startType)
		margin := connecting.Margin
		if cur.Visibility == widget.Gone {
			margin = connecting.GoneMargin
		}
		sv := connecting.Variable(pool)
		ev := cur.Anchor(endType).Variable(pool)
		if err := sys.AddEquality(sv, ev, margin, lattice.Fixed); err != nil {
			return err
		}
	}

	first := arena.Widget(c.Members[0])
	last := arena.Widget(c.Members[len(c.Members)-1])
	firstStart := first.Anchor(startType)
	lastEnd := last.Anchor(endType)

	stV, stMargin, _, stOK := externalTarget(arena, firstStart, pool)
	etV, etMargin, _, etOK := externalTarget(arena, lastEnd, pool)
	if !stOK || !etOK {
		return nil
	}
	bias := biasOf(c.Head(arena), c.Axis)
	row := rows.Centering(pool, firstStart.Variable(pool), stV, stMargin, bias, etV, lastEnd.Variable(pool), etMargin)
	return sys.AddConstraint(row)
}

// compileSpread equalizes every gap, including the two outer gaps
// between the chain and whatever it connects to outside itself.
func compileSpread(sys *tableau.System, arena *widget.Arena, c Chain, startType, endType widget.AnchorType) error {
	return equalizeGaps(sys, arena, c, startType, endType, true)
}

// compileSpreadInside pins the chain's own ends flush to their outer
// targets and equalizes only the interior gaps.
func compileSpreadInside(sys *tableau.System, arena *widget.Arena, c Chain, startType, endType widget.AnchorType) error {
	pool := sys.Pool()
	first := arena.Widget(c.Members[0])
	last := arena.Widget(c.Members[len(c.Members)-1])

	if v, margin, _, ok := externalTarget(arena, first.Anchor(startType), pool); ok {
		if err := sys.AddEquality(first.Anchor(startType).Variable(pool), v, margin, lattice.Fixed); err != nil {
			return err
		}
	}
	if v, margin, _, ok := externalTarget(arena, last.Anchor(endType), pool); ok {
		if err := sys.AddEquality(last.Anchor(endType).Variable(pool), v, -margin, lattice.Fixed); err != nil {
			return err
		}
	}

	return equalizeGaps(sys, arena, c, startType, endType, false)
}

// equalizeGaps builds `gap(i) - gap(i+1) = 0` at Highest strength for
// every consecutive pair of gaps between chain members. When
// includeOuter is set, the chain's own outer gaps (to whatever lies
// outside it) join the equalized set.
func equalizeGaps(sys *tableau.System, arena *widget.Arena, c Chain, startType, endType widget.AnchorType, includeOuter bool) error {
	pool := sys.Pool()

	type gap struct {
		left, right *lattice.Variable
		constant    float64
	}
	var gaps []gap

	first := arena.Widget(c.Members[0])
	if includeOuter {
		if v, margin, _, ok := externalTarget(arena, first.Anchor(startType), pool); ok {
			gaps = append(gaps, gap{v, first.Anchor(startType).Variable(pool), margin})
		}
	}
	for i := 0; i+1 < len(c.Members); i++ {
		cur := arena.Widget(c.Members[i])
		nxt := arena.Widget(c.Members[i+1])
		gaps = append(gaps, gap{cur.Anchor(endType).Variable(pool), nxt.Anchor(startType).Variable(pool), 0})
	}
	last := arena.Widget(c.Members[len(c.Members)-1])
	if includeOuter {
		if v, margin, _, ok := externalTarget(arena, last.Anchor(endType), pool); ok {
			gaps = append(gaps, gap{last.Anchor(endType).Variable(pool), v, margin})
		}
	}

	for i := 0; i+1 < len(gaps); i++ {
		a, b := gaps[i], gaps[i+1]
		row := pool.CreateRow()
		row.Coeffs.Set(a.right, 1)
		row.Coeffs.Set(a.left, -1)
		row.Coeffs.Set(b.right, -1)
		row.Coeffs.Set(b.left, 1)
		row.Constant = b.constant - a.constant
		row.Coeffs.Set(pool.AcquireWithStrength(lattice.Error, lattice.Highest), 1)
		row.Coeffs.Set(pool.AcquireWithStrength(lattice.Error, lattice.Highest), -1)
		if err := sys.AddConstraint(row); err != nil {
			return err
		}
	}
	return nil
}

// compileWeights splits space proportionally between adjacent
// MATCH_CONSTRAINT members whose default mode stretches within the
// chain (Spread or Ratio). An undefined weight (< 0) is treated as 1,
// matching the "equal share" fallback spec §4.5 describes.
func compileWeights(sys *tableau.System, arena *widget.Arena, c Chain, startType, endType widget.AnchorType) error {
	pool := sys.Pool()
	for i := 0; i+1 < len(c.Members); i++ {
		a := arena.Widget(c.Members[i])
		b := arena.Widget(c.Members[i+1])
		if behaviorOf(a, c.Axis) != widget.MatchConstraint || behaviorOf(b, c.Axis) != widget.MatchConstraint {
			continue
		}
		da, db := a.MatchDefaultH, b.MatchDefaultH
		if c.Axis == widget.Vertical {
			da, db = a.MatchDefaultV, b.MatchDefaultV
		}
		if (da != widget.MatchSpread && da != widget.MatchRatio) || (db != widget.MatchSpread && db != widget.MatchRatio) {
			continue
		}
		wa, wb := weightOf(a, c.Axis), weightOf(b, c.Axis)
		if wa < 0 {
			wa = 1
		}
		if wb < 0 {
			wb = 1
		}
		row := rows.WeightedEqualDimensions(pool,
			a.Anchor(startType).Variable(pool), a.Anchor(endType).Variable(pool),
			b.Anchor(startType).Variable(pool), b.Anchor(endType).Variable(pool),
			wa, wb)
		if err := sys.AddConstraint(row); err != nil {
			return err
		}
	}
	return nil
}
