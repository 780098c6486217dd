// SPDX-License-Identifier: MIT

package layout

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/widget"
)

// Invariant: a FIXED-size widget centered with a given bias between two
// resolved points always lands at lo + bias*(span-size), regardless of
// bias, span, or size — whether it resolves through the direct
// optimizer or falls through to the solver.
func TestProperty_CenteringHonorsBias(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("centered widget position matches bias formula", prop.ForAll(
		func(parentW, size, bias float64) bool {
			arena := widget.NewArena()
			root := arena.Root()
			rw := arena.Widget(root)
			rw.Width, rw.Height = parentW, 10

			a := arena.CreateWidget(root)
			wa := arena.Widget(a)
			wa.Width, wa.Height = size, 10
			wa.SetBias(widget.Horizontal, bias)
			connect(arena, a, widget.Left, root, widget.Left, 0, lattice.High)
			connect(arena, a, widget.Right, root, widget.Right, 0, lattice.High)
			connect(arena, a, widget.Top, root, widget.Top, 0, lattice.High)
			connect(arena, a, widget.Bottom, root, widget.Bottom, 0, lattice.High)

			c := NewContainer(arena)
			if err := c.Layout(context.Background()); err != nil {
				return false
			}

			l, _, _, _, ok := wa.Frame()
			if !ok {
				return false
			}
			want := bias * (parentW - size)
			return abs(l-want) < 1.0
		},
		gen.Float64Range(20, 500),
		gen.Float64Range(1, 19),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
