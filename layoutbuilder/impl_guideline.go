// SPDX-License-Identifier: MIT
//
// File: impl_guideline.go
// Role: Constructor-shaped wrappers around arena.NewGuideline and
// arena.NewBarrier, so a host composing shapes with other Constructors
// in this package doesn't have to drop down to the arena API for these
// two cases alone.

package layoutbuilder

import "github.com/katalvlaran/cassowary/widget"

// PercentGuideline places a single vertical-orientation-agnostic
// guideline at the given fraction of the parent's span along axis.
// fraction is not clamped, here or by the guideline compiler: a value
// outside [0, 1] places the guideline outside the parent's span.
func PercentGuideline(axis widget.Axis, fraction float64) Constructor {
	return func(arena *widget.Arena, parent widget.ID) ([]widget.ID, error) {
		if arena.Widget(parent) == nil {
			return nil, ErrNoSuchParent
		}
		id := arena.NewGuideline(parent, axis, widget.GuidelineRelative{
			Mode:  widget.GuidelinePercent,
			Value: fraction,
		})
		return []widget.ID{id}, nil
	}
}

// FixedGuideline places a guideline a fixed distance from the parent's
// begin edge (mode == widget.GuidelineBegin) or end edge
// (mode == widget.GuidelineEnd) along axis.
func FixedGuideline(axis widget.Axis, mode widget.GuidelineMode, offset float64) Constructor {
	return func(arena *widget.Arena, parent widget.ID) ([]widget.ID, error) {
		if arena.Widget(parent) == nil {
			return nil, ErrNoSuchParent
		}
		id := arena.NewGuideline(parent, axis, widget.GuidelineRelative{
			Mode:  mode,
			Value: offset,
		})
		return []widget.ID{id}, nil
	}
}

// Barrier pins a helper widget to the extreme (by side) of members'
// anchors along axis. An empty members slice returns ErrTooFewMembers;
// member ids are not checked against the arena.
func Barrier(axis widget.Axis, side widget.BarrierSide, members []widget.ID) Constructor {
	return func(arena *widget.Arena, parent widget.ID) ([]widget.ID, error) {
		if arena.Widget(parent) == nil {
			return nil, ErrNoSuchParent
		}
		if len(members) < 1 {
			return nil, ErrTooFewMembers
		}
		id := arena.NewBarrier(parent, axis, side, members)
		return []widget.ID{id}, nil
	}
}
