// SPDX-License-Identifier: MIT

package direct

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cassowary/widget"
)

func TestResolve_UnconnectedFixedWidgetsUseOwnOrigin(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Widget(arena.Root())
	root.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	root.SetDimensionBehavior(widget.Vertical, widget.Fixed)
	root.Width, root.Height = 400, 400

	a := arena.CreateWidget(arena.Root())
	wa := arena.Widget(a)
	wa.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	wa.SetDimensionBehavior(widget.Vertical, widget.Fixed)
	wa.Width, wa.Height = 50, 50

	result := Resolve(arena, nil)
	require.True(t, result.Skip[arena.Root()])
	require.True(t, result.Skip[a])
	require.Equal(t, frame{0, 0, 400, 400}, result.frames[arena.Root()])
	require.Equal(t, frame{0, 0, 50, 50}, result.frames[a])
}

func TestResolve_CenteredPairUsesBias(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Widget(arena.Root())
	root.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	root.SetDimensionBehavior(widget.Vertical, widget.Fixed)
	root.Width, root.Height = 100, 100

	a := arena.CreateWidget(arena.Root())
	wa := arena.Widget(a)
	wa.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	wa.SetDimensionBehavior(widget.Vertical, widget.Fixed)
	wa.Width, wa.Height = 20, 20
	wa.SetBias(widget.Horizontal, 0.5)
	wa.Anchor(widget.Left).Target = &widget.AnchorRef{Widget: arena.Root(), Type: widget.Left}
	wa.Anchor(widget.Right).Target = &widget.AnchorRef{Widget: arena.Root(), Type: widget.Right}

	result := Resolve(arena, nil)
	require.True(t, result.Skip[a])
	f := result.frames[a]
	require.InDelta(t, 40, f.left, 1e-9)
	require.InDelta(t, 60, f.right, 1e-9)
}

func TestResolve_ChainMembersAreSkipped(t *testing.T) {
	arena := widget.NewArena()
	a := arena.CreateWidget(arena.Root())
	result := Resolve(arena, map[widget.ID]bool{a: true})
	require.False(t, result.Skip[a])
}
