// SPDX-License-Identifier: MIT
//
// File: extent.go
// Role: measuring one component's span along axis from its own members
// alone, used to seed a wrap-content parent's size before the main
// solve runs.

package group

import "github.com/katalvlaran/cassowary/widget"

func sizeOf(w *widget.Widget, axis widget.Axis) (float64, bool) {
	var behavior widget.Behavior
	if axis == widget.Horizontal {
		behavior = w.BehaviorH
	} else {
		behavior = w.BehaviorV
	}
	if behavior != widget.Fixed && behavior != widget.WrapContent {
		return 0, false
	}
	if axis == widget.Horizontal {
		return w.Width, true
	}
	return w.Height, true
}

// Extent computes a component's span along axis by walking its members
// from whichever one anchors to the parent (or has no connection at
// all, for a lone member) and chaining known sizes and margins across
// the rest. Reports ok == false when any member's size or an
// intermediate margin chain is not resolvable this way, in which case
// the caller should fall back to letting the full solver measure it.
func Extent(arena *widget.Arena, parent widget.ID, axis widget.Axis, c Component) (extent float64, ok bool) {
	startType, endType := axisAnchors(axis)

	position := make(map[widget.ID]float64, len(c.Members))
	memberSet := make(map[widget.ID]bool, len(c.Members))
	for _, id := range c.Members {
		memberSet[id] = true
	}

	seeded := false
	for _, id := range c.Members {
		w := arena.Widget(id)
		start := w.Anchor(startType)
		if start.Target == nil || start.Target.Widget == parent {
			position[id] = 0
			seeded = true
			break
		}
	}
	if !seeded {
		position[c.Members[0]] = 0
	}

	changed := true
	for pass := 0; changed && pass < len(c.Members)+1; pass++ {
		changed = false
		for _, id := range c.Members {
			if _, done := position[id]; done {
				continue
			}
			w := arena.Widget(id)
			start := w.Anchor(startType)
			if start.Target == nil || !memberSet[start.Target.Widget] {
				continue
			}
			targetWidget := arena.Widget(start.Target.Widget)
			p, ok := position[start.Target.Widget]
			if !ok {
				continue
			}
			if start.Target.Type == endType {
				size, sizeOK := sizeOf(targetWidget, axis)
				if !sizeOK {
					continue
				}
				p += size
			}
			position[id] = p + start.Margin
			changed = true
		}
	}

	maxEnd := 0.0
	for _, id := range c.Members {
		p, ok := position[id]
		if !ok {
			return 0, false
		}
		size, sizeOK := sizeOf(arena.Widget(id), axis)
		if !sizeOK {
			return 0, false
		}
		if end := p + size; end > maxEnd {
			maxEnd = end
		}
	}
	return maxEnd, true
}
