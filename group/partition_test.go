// SPDX-License-Identifier: MIT

package group

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cassowary/widget"
)

func TestPartition_SplitsUnrelatedChildren(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()
	arena.CreateWidget(root)
	arena.CreateWidget(root)

	components, eligible := Partition(arena, root, widget.Horizontal)
	require.True(t, eligible)
	require.Len(t, components, 2)
}

func TestPartition_LinksConnectedSiblingsIntoOneComponent(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()
	a := arena.CreateWidget(root)
	b := arena.CreateWidget(root)
	arena.Widget(a).Anchor(widget.Right).Target = &widget.AnchorRef{Widget: b, Type: widget.Left}
	arena.Widget(b).Anchor(widget.Left).Target = &widget.AnchorRef{Widget: a, Type: widget.Right}

	components, eligible := Partition(arena, root, widget.Horizontal)
	require.True(t, eligible)
	require.Len(t, components, 1)
	require.ElementsMatch(t, []widget.ID{a, b}, components[0].Members)
}

func TestPartition_HelperChildCollapsesPartition(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()
	arena.CreateWidget(root)
	arena.NewGuideline(root, widget.Vertical, widget.GuidelineRelative{Mode: widget.GuidelinePercent, Value: 0.5})

	_, eligible := Partition(arena, root, widget.Horizontal)
	require.False(t, eligible)
}

func TestPartition_BothEndsToParentCollapsesPartition(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()
	a := arena.CreateWidget(root)
	arena.Widget(a).Anchor(widget.Left).Target = &widget.AnchorRef{Widget: root, Type: widget.Left}
	arena.Widget(a).Anchor(widget.Right).Target = &widget.AnchorRef{Widget: root, Type: widget.Right}

	_, eligible := Partition(arena, root, widget.Horizontal)
	require.False(t, eligible)
}

func TestExtent_ChainsMarginsFromParentAnchor(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()
	a := arena.CreateWidget(root)
	b := arena.CreateWidget(root)
	wa, wb := arena.Widget(a), arena.Widget(b)
	wa.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	wb.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	wa.Width, wb.Width = 30, 40
	wa.Anchor(widget.Left).Target = &widget.AnchorRef{Widget: root, Type: widget.Left}
	wb.Anchor(widget.Left).Target = &widget.AnchorRef{Widget: a, Type: widget.Right}
	wb.Anchor(widget.Left).Margin = 10

	components, eligible := Partition(arena, root, widget.Horizontal)
	require.True(t, eligible)
	require.Len(t, components, 1)

	extent, ok := Extent(arena, root, widget.Horizontal, components[0])
	require.True(t, ok)
	require.InDelta(t, 80, extent, 1e-9) // 30 + 10 margin + 40
}
