// SPDX-License-Identifier: MIT
//
// File: detect.go
// Role: finding bidirectional widget sequences along one axis.

package chain

import "github.com/katalvlaran/cassowary/widget"

// Chain is one detected sequence, in link order (left-to-right or
// top-to-bottom, whichever the axis makes physical). HeadIndex names
// which member is the chain's head for styling purposes: 0 for every
// vertical chain and every left-to-right horizontal chain, or
// len(Members)-1 for a right-to-left horizontal chain.
type Chain struct {
	Axis      widget.Axis
	Members   []widget.ID
	HeadIndex int
}

// Head returns the widget Compile should read chain style and bias
// from.
func (c Chain) Head(arena *widget.Arena) *widget.Widget {
	return arena.Widget(c.Members[c.HeadIndex])
}

func isLinked(arena *widget.Arena, a, b *widget.Widget, startType, endType widget.AnchorType) bool {
	aEnd := a.Anchor(endType)
	bStart := b.Anchor(startType)
	if aEnd.Target == nil || bStart.Target == nil {
		return false
	}
	return aEnd.Target.Widget == b.ID && aEnd.Target.Type == startType &&
		bStart.Target.Widget == a.ID && bStart.Target.Type == endType
}

// Find walks every widget under arena and returns the bidirectionally
// linked sequences along axis, in link order. A widget participates in
// at most one chain per axis; order follows increasing widget ID,
// which for a chain built in source order is also link order.
// direction only matters for horizontal chains: RightToLeft moves the
// chain's head from the first to the last widget in that link order,
// per spec.md §4.5's mirrored-reading-order rule.
func Find(arena *widget.Arena, axis widget.Axis, direction widget.Direction) []Chain {
	startType, endType := startEnd(axis)

	next := make(map[widget.ID]widget.ID)
	hasPredecessor := make(map[widget.ID]bool)

	n := arena.Len()
	for i := 0; i < n; i++ {
		a := arena.Widget(widget.ID(i))
		if a == nil || a.IsHelper() {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			b := arena.Widget(widget.ID(j))
			if b == nil || b.IsHelper() {
				continue
			}
			if isLinked(arena, a, b, startType, endType) {
				next[a.ID] = b.ID
				hasPredecessor[b.ID] = true
			}
		}
	}

	visited := make(map[widget.ID]bool)
	var out []Chain
	for i := 0; i < n; i++ {
		id := widget.ID(i)
		if hasPredecessor[id] || visited[id] {
			continue
		}
		if _, ok := next[id]; !ok {
			continue
		}
		members := []widget.ID{id}
		visited[id] = true
		cur := id
		for nxt, ok := next[cur]; ok; nxt, ok = next[cur] {
			members = append(members, nxt)
			visited[nxt] = true
			cur = nxt
		}
		headIndex := 0
		if axis == widget.Horizontal && direction == widget.RightToLeft {
			headIndex = len(members) - 1
		}
		out = append(out, Chain{Axis: axis, Members: members, HeadIndex: headIndex})
	}
	return out
}

func startEnd(axis widget.Axis) (start, end widget.AnchorType) {
	if axis == widget.Horizontal {
		return widget.Left, widget.Right
	}
	return widget.Top, widget.Bottom
}
