// SPDX-License-Identifier: MIT
//
// File: partition.go
// Role: the connected-component walk and the eligibility rules that
// decide whether a partition may be trusted.

package group

import "github.com/katalvlaran/cassowary/widget"

// Component is one connected group of a wrap-content parent's
// children, along one axis.
type Component struct {
	Members []widget.ID
}

func axisAnchors(axis widget.Axis) (start, end widget.AnchorType) {
	if axis == widget.Horizontal {
		return widget.Left, widget.Right
	}
	return widget.Top, widget.Bottom
}

// Partition walks parent's children along axis and groups them into
// connected components by sibling anchor connections (a link in either
// direction joins two children). It
// reports eligible == false (with a single component covering every
// child) whenever any rule in spec.md §4.7 disqualifies the whole
// partition: a Helper child, a CENTER connection, a MATCH_CONSTRAINT
// ratio widget whose other axis is neither Fixed nor WrapContent, or a child anchored to
// the parent on both ends of the wrap-content axis.
func Partition(arena *widget.Arena, parent widget.ID, axis widget.Axis) (components []Component, eligible bool) {
	p := arena.Widget(parent)
	if p == nil || len(p.Children) == 0 {
		return nil, true
	}

	children := p.Children
	collapsed := []Component{{Members: append([]widget.ID(nil), children...)}}

	childSet := make(map[widget.ID]bool, len(children))
	for _, id := range children {
		childSet[id] = true
	}

	startType, endType := axisAnchors(axis)

	adj := make(map[widget.ID][]widget.ID, len(children))
	for _, id := range children {
		w := arena.Widget(id)
		if w.IsHelper() {
			return collapsed, false
		}

		start, end := w.Anchor(startType), w.Anchor(endType)

		if start.Target != nil && start.Target.Type == widget.Center {
			return collapsed, false
		}
		if end.Target != nil && end.Target.Type == widget.Center {
			return collapsed, false
		}
		if start.Target != nil && start.Target.Widget == parent &&
			end.Target != nil && end.Target.Widget == parent {
			return collapsed, false
		}
		if !ratioEligible(w, axis) {
			return collapsed, false
		}

		for _, a := range []*widget.Anchor{start, end} {
			if a.Target != nil && childSet[a.Target.Widget] {
				adj[id] = append(adj[id], a.Target.Widget)
				adj[a.Target.Widget] = append(adj[a.Target.Widget], id)
			}
		}
	}

	for _, id := range children {
		w := arena.Widget(id)
		for _, a := range w.Anchors {
			if a.Target == nil {
				continue
			}
			if a.Target.Widget != parent && !childSet[a.Target.Widget] {
				return collapsed, false
			}
		}
	}

	visited := make(map[widget.ID]bool, len(children))
	for _, id := range children {
		if visited[id] {
			continue
		}
		members := bfs(id, adj, visited)
		components = append(components, Component{Members: members})
	}
	return components, true
}

func bfs(start widget.ID, adj map[widget.ID][]widget.ID, visited map[widget.ID]bool) []widget.ID {
	queue := []widget.ID{start}
	visited[start] = true
	var members []widget.ID
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		members = append(members, cur)
		for _, nxt := range adj[cur] {
			if !visited[nxt] {
				visited[nxt] = true
				queue = append(queue, nxt)
			}
		}
	}
	return members
}

// ratioEligible rejects a MATCH_CONSTRAINT-with-ratio widget whose
// ratio drives axis unless its other axis is independently fixed —
// otherwise the component's extent along axis cannot be measured
// without first knowing the other axis, which this partition pass
// does not compute.
func ratioEligible(w *widget.Widget, axis widget.Axis) bool {
	if !w.RatioSet || w.RatioDriven != axis {
		return true
	}
	other := widget.Vertical
	if axis == widget.Vertical {
		other = widget.Horizontal
	}
	var otherBehavior widget.Behavior
	if other == widget.Horizontal {
		otherBehavior = w.BehaviorH
	} else {
		otherBehavior = w.BehaviorV
	}
	return otherBehavior == widget.Fixed || otherBehavior == widget.WrapContent
}
