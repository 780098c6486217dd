// SPDX-License-Identifier: MIT
//
// File: arena.go
// Role: the id-indexed widget arena — creation, lookup, child-tree
// bookkeeping and the Guideline/Barrier Helper constructors.

package widget

// Arena owns every widget in one container's tree. Widgets are indexed
// by small integer id starting at 0 (the root, created by NewArena).
type Arena struct {
	widgets []Widget
}

// NewArena constructs an Arena with a single root widget (id 0,
// Parent == NoWidget).
func NewArena() *Arena {
	a := &Arena{}
	a.widgets = append(a.widgets, Widget{
		ID:         0,
		Parent:     NoWidget,
		BiasH:      0.5,
		BiasV:      0.5,
		WeightH:    -1,
		WeightV:    -1,
		Visibility: Visible,
		CircularTarget: NoWidget,
	})
	return a
}

// Root returns the arena's root widget id.
func (a *Arena) Root() ID { return 0 }

// Widget returns a pointer to the widget with the given id, or nil if
// id does not name a live widget in this arena.
func (a *Arena) Widget(id ID) *Widget {
	if id < 0 || int(id) >= len(a.widgets) {
		return nil
	}
	return &a.widgets[id]
}

// Len returns the number of widgets in the arena, including the root.
func (a *Arena) Len() int { return len(a.widgets) }

// CreateWidget appends a new Normal widget parented under parent and
// returns its id. Returns NoWidget if parent does not exist.
func (a *Arena) CreateWidget(parent ID) ID {
	p := a.Widget(parent)
	if p == nil {
		return NoWidget
	}
	id := ID(len(a.widgets))
	a.widgets = append(a.widgets, Widget{
		ID:             id,
		Parent:         parent,
		BiasH:          0.5,
		BiasV:          0.5,
		WeightH:        -1,
		WeightV:        -1,
		Visibility:     Visible,
		CircularTarget: NoWidget,
	})
	p = a.Widget(parent) // re-fetch: append above may have reallocated a.widgets
	p.Children = append(p.Children, id)
	return id
}

// NewGuideline creates a Helper widget representing a line at a fixed
// offset, percent, or distance-from-end inside parent, along
// orientation. A Guideline never participates in group eligibility
// (spec §4.7) and is skipped by the compiler's normal dimension rows.
func (a *Arena) NewGuideline(parent ID, orientation Axis, relative GuidelineRelative) ID {
	id := a.CreateWidget(parent)
	if id == NoWidget {
		return NoWidget
	}
	w := a.Widget(id)
	w.Kind = GuidelineKind
	w.GuidelineOrientation = orientation
	w.GuidelineRelative = relative
	return id
}

// NewBarrier creates a Helper widget pinned to the extreme (by side) of
// children's anchors along axis.
func (a *Arena) NewBarrier(parent ID, axis Axis, side BarrierSide, children []ID) ID {
	id := a.CreateWidget(parent)
	if id == NoWidget {
		return NoWidget
	}
	w := a.Widget(id)
	w.Kind = BarrierKind
	w.BarrierAxis = axis
	w.BarrierSide = side
	w.BarrierChildren = append([]ID(nil), children...)
	return id
}

// ResetVariables clears every widget's cached anchor variables, called
// once at the start of each layout pass so a fresh pool hands out
// fresh variable references.
func (a *Arena) ResetVariables() {
	for i := range a.widgets {
		for t := range a.widgets[i].Anchors {
			a.widgets[i].Anchors[t].ResetVariable()
		}
	}
}
