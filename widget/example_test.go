// SPDX-License-Identifier: MIT

package widget_test

import (
	"fmt"

	"github.com/katalvlaran/cassowary/widget"
)

// ExampleArena demonstrates building a small widget tree and wiring
// one anchor connection by hand.
func ExampleArena() {
	arena := widget.NewArena()
	root := arena.Root()

	child := arena.CreateWidget(root)
	w := arena.Widget(child)
	w.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	w.Width = 100
	w.Anchor(widget.Left).Target = &widget.AnchorRef{Widget: root, Type: widget.Left}
	w.Anchor(widget.Left).Margin = 10

	fmt.Println("widgets:", arena.Len())
	fmt.Println("child is helper:", w.IsHelper())
	fmt.Println("left target:", w.Anchor(widget.Left).Target.Type)

	// Output:
	// widgets: 2
	// child is helper: false
	// left target: left
}

// ExampleArena_NewGuideline demonstrates placing a percent guideline.
func ExampleArena_NewGuideline() {
	arena := widget.NewArena()
	g := arena.NewGuideline(arena.Root(), widget.Vertical, widget.GuidelineRelative{
		Mode:  widget.GuidelinePercent,
		Value: 0.5,
	})

	fmt.Println("is helper:", arena.Widget(g).IsHelper())

	// Output:
	// is helper: true
}
