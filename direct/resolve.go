// SPDX-License-Identifier: MIT
//
// File: resolve.go
// Role: the fixed-point arithmetic resolution pass.

package direct

import "github.com/katalvlaran/cassowary/widget"

type anchorKey struct {
	id widget.ID
	t  widget.AnchorType
}

type frame struct {
	left, top, right, bottom float64
}

// Result records which widgets this pass resolved without the solver,
// and the frame computed for each.
type Result struct {
	Skip   map[widget.ID]bool
	frames map[widget.ID]frame
}

// Apply writes every resolved widget's computed frame into arena.
func (r *Result) Apply(arena *widget.Arena) {
	for id := range r.Skip {
		f := r.frames[id]
		arena.Widget(id).SetFrame(f.left, f.top, f.right, f.bottom)
	}
}

// Resolve walks arena's widgets to a fixed point, computing anchor
// values for widgets whose geometry follows directly from already-known
// neighbors. chainMembers names widgets participating in a chain along
// either axis; those are left entirely to the chain/solver path, since
// a chain's arithmetic fast path needs both chain endpoints resolved
// first and is compiled separately once chain.Compile runs.
func Resolve(arena *widget.Arena, chainMembers map[widget.ID]bool) *Result {
	value := make(map[anchorKey]float64)
	done := make(map[anchorKey]bool)

	n := arena.Len()
	changed := true
	for pass := 0; changed && pass < n+1; pass++ {
		changed = false
		for i := 0; i < n; i++ {
			w := arena.Widget(widget.ID(i))
			if w == nil || w.IsHelper() || chainMembers[w.ID] {
				continue
			}
			for _, axis := range []widget.Axis{widget.Horizontal, widget.Vertical} {
				if resolveAxis(arena, w, axis, value, done) {
					changed = true
				}
			}
		}
	}

	result := &Result{Skip: make(map[widget.ID]bool), frames: make(map[widget.ID]frame)}
	for i := 0; i < n; i++ {
		w := arena.Widget(widget.ID(i))
		if w == nil || w.IsHelper() || chainMembers[w.ID] {
			continue
		}
		l, okL := value[anchorKey{w.ID, widget.Left}]
		t, okT := value[anchorKey{w.ID, widget.Top}]
		r, okR := value[anchorKey{w.ID, widget.Right}]
		b, okB := value[anchorKey{w.ID, widget.Bottom}]
		if okL && okT && okR && okB {
			result.Skip[w.ID] = true
			result.frames[w.ID] = frame{l, t, r, b}
		}
	}
	return result
}

func axisAnchors(axis widget.Axis) (start, end widget.AnchorType) {
	if axis == widget.Horizontal {
		return widget.Left, widget.Right
	}
	return widget.Top, widget.Bottom
}

func originOf(w *widget.Widget, axis widget.Axis) float64 {
	if axis == widget.Horizontal {
		return w.X
	}
	return w.Y
}

func biasOf(w *widget.Widget, axis widget.Axis) float64 {
	if axis == widget.Horizontal {
		return w.BiasH
	}
	return w.BiasV
}

func behaviorOf(w *widget.Widget, axis widget.Axis) widget.Behavior {
	if axis == widget.Horizontal {
		return w.BehaviorH
	}
	return w.BehaviorV
}

// sizeOf returns a widget's axis extent when it is knowable without the
// solver: Fixed and WrapContent both carry an already-known size in
// this model (WrapContent's being whatever the host measured before
// the layout pass). MatchConstraint is not independently sized — its
// span comes from its connections instead. A MatchParent widget reaches
// this function only when matchParentSpan did not apply (its parent is
// not Fixed or not yet resolved), and is reported not independently
// sized. A GONE Fixed or WrapContent widget has size 0, matching the
// compiler's collapse of its end anchor onto its start.
func sizeOf(w *widget.Widget, axis widget.Axis) (float64, bool) {
	behavior := behaviorOf(w, axis)
	if w.Visibility == widget.Gone && (behavior == widget.Fixed || behavior == widget.WrapContent) {
		return 0, true
	}
	if behavior != widget.Fixed && behavior != widget.WrapContent {
		return 0, false
	}
	if axis == widget.Horizontal {
		return w.Width, true
	}
	return w.Height, true
}

// resolveExternalTarget returns the resolved value of the anchor that
// anchor connects to, plus the effective margin, if that target anchor
// is itself a plain Left/Top/Right/Bottom anchor already resolved by
// this pass. Connections to Center*/Baseline targets, or to a target
// not yet resolved, report ok == false — always safe, since an
// unresolved direct pass simply defers to the solver.
func resolveExternalTarget(arena *widget.Arena, anchor *widget.Anchor, value map[anchorKey]float64) (float64, float64, bool) {
	if anchor.Target == nil {
		return 0, 0, false
	}
	switch anchor.Target.Type {
	case widget.Left, widget.Top, widget.Right, widget.Bottom:
	default:
		return 0, 0, false
	}
	target := arena.Widget(anchor.Target.Widget)
	if target == nil {
		return 0, 0, false
	}
	v, ok := value[anchorKey{target.ID, anchor.Target.Type}]
	if !ok {
		return 0, 0, false
	}
	margin := anchor.Margin
	if target.Visibility == widget.Gone {
		margin = anchor.GoneMargin
	}
	return v, margin, true
}

// resolveConnections computes w's span along axis from its own
// DIRECT_CONNECTION/CENTER_CONNECTION/MATCH_CONNECTION anchor wiring —
// the normal case, used whenever the MATCH_PARENT fast path in
// matchparent.go doesn't apply.
func resolveConnections(arena *widget.Arena, w *widget.Widget, axis widget.Axis, start, end *widget.Anchor, value map[anchorKey]float64) (sVal, eVal float64, ok bool) {
	switch {
	case start.Target == nil && end.Target == nil:
		size, sizeOK := sizeOf(w, axis)
		if sizeOK {
			sVal = originOf(w, axis)
			eVal = sVal + size
			ok = true
		}

	case start.Target != nil && end.Target == nil:
		if tv, margin, tOK := resolveExternalTarget(arena, start, value); tOK {
			if size, sizeOK := sizeOf(w, axis); sizeOK {
				sVal = tv + margin
				eVal = sVal + size
				ok = true
			}
		}

	case end.Target != nil && start.Target == nil:
		if tv, margin, tOK := resolveExternalTarget(arena, end, value); tOK {
			if size, sizeOK := sizeOf(w, axis); sizeOK {
				eVal = tv - margin
				sVal = eVal - size
				ok = true
			}
		}

	default: // both connected
		stv, stm, stOK := resolveExternalTarget(arena, start, value)
		etv, etm, etOK := resolveExternalTarget(arena, end, value)
		if stOK && etOK {
			lo, hi := stv+stm, etv-etm
			if behaviorOf(w, axis) == widget.MatchConstraint {
				// A ratio ties this axis's span to the other axis at the
				// solver level (compiler.compileRatio); this single-axis
				// pass has no way to honor that, so it defers rather than
				// stretching to fill the full gap.
				if hi >= lo && !w.RatioSet {
					sVal, eVal, ok = lo, hi, true
				}
			} else if size, sizeOK := sizeOf(w, axis); sizeOK {
				span := hi - lo
				bias := biasOf(w, axis)
				sVal = lo + bias*(span-size)
				eVal = sVal + size
				ok = true
			}
		}
	}
	return sVal, eVal, ok
}

// resolveAxis attempts to compute both endpoint values for w along
// axis, returning whether it made new progress this pass.
func resolveAxis(arena *widget.Arena, w *widget.Widget, axis widget.Axis, value map[anchorKey]float64, done map[anchorKey]bool) bool {
	startType, endType := axisAnchors(axis)
	startKey, endKey := anchorKey{w.ID, startType}, anchorKey{w.ID, endType}
	if done[startKey] && done[endKey] {
		return false
	}

	start := w.Anchor(startType)
	end := w.Anchor(endType)

	sVal, eVal, ok := matchParentSpan(arena, w, axis, value)
	if !ok {
		sVal, eVal, ok = resolveConnections(arena, w, axis, start, end, value)
	}
	if !ok {
		return false
	}
	progressed := false
	if !done[startKey] {
		value[startKey] = sVal
		done[startKey] = true
		progressed = true
	}
	if !done[endKey] {
		value[endKey] = eVal
		done[endKey] = true
		progressed = true
	}
	return progressed
}
