// SPDX-License-Identifier: MIT

package layout_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cassowary/layout"
	"github.com/katalvlaran/cassowary/widget"
)

// ExampleContainer_Layout resolves a single fixed-size widget anchored
// by its top-left corner to its parent, with a 10px margin on each
// side.
func ExampleContainer_Layout() {
	arena := widget.NewArena()
	root := arena.Widget(arena.Root())
	root.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	root.SetDimensionBehavior(widget.Vertical, widget.Fixed)
	root.Width = 400
	root.Height = 300

	child := arena.CreateWidget(arena.Root())
	w := arena.Widget(child)
	w.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	w.SetDimensionBehavior(widget.Vertical, widget.Fixed)
	w.Width, w.Height = 100, 50
	w.Anchor(widget.Left).Target = &widget.AnchorRef{Widget: arena.Root(), Type: widget.Left}
	w.Anchor(widget.Left).Margin = 10
	w.Anchor(widget.Top).Target = &widget.AnchorRef{Widget: arena.Root(), Type: widget.Top}
	w.Anchor(widget.Top).Margin = 10

	container := layout.NewContainer(arena)
	if err := container.Layout(context.Background()); err != nil {
		fmt.Println("layout error:", err)
		return
	}

	left, top, right, bottom, _ := w.Frame()
	fmt.Printf("%.0f %.0f %.0f %.0f\n", left, top, right, bottom)

	// Output:
	// 10 10 110 60
}
