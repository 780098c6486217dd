// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols, cellW, cellH) constructor.
//
// Canonical model:
//   - rows x cols mesh of fixed-size cells, row-major.
//   - Each cell's LEFT anchors to its left neighbor's RIGHT (or to the
//     parent's LEFT in column 0); each cell's TOP anchors to its above
//     neighbor's BOTTOM (or to the parent's TOP in row 0).
//   - Connections run one way, predecessor to successor, since a grid
//     is not a chain and chain.Find has no business detecting it.
//
// Contract:
//   - rows >= 1 and cols >= 1, else ErrTooFewMembers.
//   - parent must be a live widget, else ErrNoSuchParent.
//   - Returns ids in row-major order: Members[r*cols+c] is cell (r,c).
//
// Determinism: stable row-major creation and connection order for a
// given (rows, cols).

package layoutbuilder

import (
	"fmt"

	"github.com/katalvlaran/cassowary/widget"
)

const minGridDim = 1

// Grid returns a Constructor building a rows x cols mesh of
// cellW x cellH widgets under parent.
func Grid(rows, cols int, cellW, cellH float64) Constructor {
	return func(arena *widget.Arena, parent widget.ID) ([]widget.ID, error) {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("grid: rows=%d, cols=%d (each must be >= %d): %w",
				rows, cols, minGridDim, ErrTooFewMembers)
		}
		if arena.Widget(parent) == nil {
			return nil, fmt.Errorf("grid: parent=%d: %w", parent, ErrNoSuchParent)
		}

		// 2) Create all cells in row-major order, fixed-size.
		ids := make([]widget.ID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := arena.CreateWidget(parent)
				w := arena.Widget(id)
				setSize(w, widget.Horizontal, cellW)
				setSize(w, widget.Vertical, cellH)
				ids[r*cols+c] = id
			}
		}

		// 3) Anchor each cell to its left and top neighbor, falling back
		// to the parent at row/column 0.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := ids[r*cols+c]

				if c == 0 {
					anchorTo(arena, id, widget.Left, parent, widget.Left)
				} else {
					left := ids[r*cols+c-1]
					anchorTo(arena, id, widget.Left, left, widget.Right)
				}

				if r == 0 {
					anchorTo(arena, id, widget.Top, parent, widget.Top)
				} else {
					above := ids[(r-1)*cols+c]
					anchorTo(arena, id, widget.Top, above, widget.Bottom)
				}
			}
		}

		return ids, nil
	}
}
