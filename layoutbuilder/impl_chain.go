// SPDX-License-Identifier: MIT
//
// File: impl_chain.go
// Role: HorizontalChain / VerticalChain constructors.
//
// Contract:
//   - n must be >= 1, else ErrTooFewMembers.
//   - parent must be a live widget, else ErrNoSuchParent.
//   - Creates n fixed-size children, links each to the next with a
//     mutual LEFT<->RIGHT (or TOP<->BOTTOM) connection at High
//     strength, and anchors the first/last to the parent's
//     corresponding edge so chain.Find sees a complete chain.
//   - The chain's style is applied to the first widget, which chain.Find
//     makes the head under LeftToRight. Under RightToLeft a horizontal
//     chain's head is its last widget, which this constructor does not
//     style.

package layoutbuilder

import (
	"fmt"

	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/widget"
)

func chain(n int, sizeEach float64, style widget.ChainStyle, axis widget.Axis) Constructor {
	return func(arena *widget.Arena, parent widget.ID) ([]widget.ID, error) {
		if n < 1 {
			return nil, fmt.Errorf("chain: n=%d: %w", n, ErrTooFewMembers)
		}
		if arena.Widget(parent) == nil {
			return nil, fmt.Errorf("chain: parent=%d: %w", parent, ErrNoSuchParent)
		}

		startType, endType := axisAnchors(axis)
		ids := make([]widget.ID, 0, n)
		for i := 0; i < n; i++ {
			id := arena.CreateWidget(parent)
			setSize(arena.Widget(id), axis, sizeEach)
			ids = append(ids, id)
		}

		arena.Widget(ids[0]).SetChainStyle(axis, style)

		anchorTo(arena, ids[0], startType, parent, startType)
		for i := 0; i+1 < len(ids); i++ {
			linkMutual(arena, ids[i], endType, ids[i+1], startType)
		}
		anchorTo(arena, ids[len(ids)-1], endType, parent, endType)

		return ids, nil
	}
}

// HorizontalChain builds n fixed-width widgets of width sizeEach,
// chained left to right under parent, using style.
func HorizontalChain(n int, sizeEach float64, style widget.ChainStyle) Constructor {
	return chain(n, sizeEach, style, widget.Horizontal)
}

// VerticalChain builds n fixed-height widgets of height sizeEach,
// chained top to bottom under parent, using style.
func VerticalChain(n int, sizeEach float64, style widget.ChainStyle) Constructor {
	return chain(n, sizeEach, style, widget.Vertical)
}

func axisAnchors(axis widget.Axis) (start, end widget.AnchorType) {
	if axis == widget.Horizontal {
		return widget.Left, widget.Right
	}
	return widget.Top, widget.Bottom
}

func setSize(w *widget.Widget, axis widget.Axis, size float64) {
	w.SetDimensionBehavior(axis, widget.Fixed)
	if axis == widget.Horizontal {
		w.Width = size
	} else {
		w.Height = size
	}
}

// anchorTo points a's anchor of type aType at target's anchor of type
// targetType, one-directional — target (typically the parent) gets no
// reciprocal anchor back into the shape being built.
func anchorTo(arena *widget.Arena, a widget.ID, aType widget.AnchorType, target widget.ID, targetType widget.AnchorType) {
	w := arena.Widget(a)
	w.Anchor(aType).Target = &widget.AnchorRef{Widget: target, Type: targetType}
	w.Anchor(aType).Strength = lattice.High
}

// linkMutual connects a's anchor to b's anchor and b's anchor back to
// a's, as a chain link requires.
func linkMutual(arena *widget.Arena, a widget.ID, aType widget.AnchorType, b widget.ID, bType widget.AnchorType) {
	anchorTo(arena, a, aType, b, bType)
	anchorTo(arena, b, bType, a, aType)
}
