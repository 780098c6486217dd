// SPDX-License-Identifier: MIT
//
// File: matchparent.go
// Role: the MATCH_PARENT fast path — a widget whose behavior is
// MatchParent pins directly to its parent's already-resolved span,
// mirroring compiler/axis.go's compileAxis MatchParent case rather
// than going through the normal anchor-connected/unconnected switch
// in resolveConnections.

package direct

import "github.com/katalvlaran/cassowary/widget"

// matchParentSpan resolves w's span along axis when w's behavior is
// MatchParent. It reports ok == false whenever the fast path cannot
// apply yet: the widget isn't MatchParent on this axis, the parent is
// itself WrapContent (whose size depends on its children and would
// make this circular), or the parent's own span hasn't resolved yet —
// all safe, since an unresolved MatchParent widget simply falls
// through to the solver path.
func matchParentSpan(arena *widget.Arena, w *widget.Widget, axis widget.Axis, value map[anchorKey]float64) (sVal, eVal float64, ok bool) {
	if behaviorOf(w, axis) != widget.MatchParent {
		return 0, 0, false
	}
	parent := arena.Widget(w.Parent)
	if parent == nil || behaviorOf(parent, axis) == widget.WrapContent {
		return 0, 0, false
	}
	startType, endType := axisAnchors(axis)
	sv, svOK := value[anchorKey{parent.ID, startType}]
	ev, evOK := value[anchorKey{parent.ID, endType}]
	if !svOK || !evOK {
		return 0, 0, false
	}
	return sv, ev, true
}
