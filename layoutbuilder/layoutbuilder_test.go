// SPDX-License-Identifier: MIT

package layoutbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cassowary/layoutbuilder"
	"github.com/katalvlaran/cassowary/widget"
)

func TestHorizontalChain_LinksHeadToParentAndMembersInSequence(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()

	ids, err := layoutbuilder.HorizontalChain(3, 50, widget.Spread)(arena, root)
	require.NoError(t, err)
	require.Len(t, ids, 3)

	head := arena.Widget(ids[0])
	require.Equal(t, widget.Spread, head.ChainStyleH)
	require.Equal(t, &widget.AnchorRef{Widget: root, Type: widget.Left}, head.Anchor(widget.Left).Target)

	for i := 0; i+1 < len(ids); i++ {
		a := arena.Widget(ids[i])
		b := arena.Widget(ids[i+1])
		require.Equal(t, &widget.AnchorRef{Widget: ids[i+1], Type: widget.Left}, a.Anchor(widget.Right).Target)
		require.Equal(t, &widget.AnchorRef{Widget: ids[i], Type: widget.Right}, b.Anchor(widget.Left).Target)
	}

	tail := arena.Widget(ids[len(ids)-1])
	require.Equal(t, &widget.AnchorRef{Widget: root, Type: widget.Right}, tail.Anchor(widget.Right).Target)
}

func TestHorizontalChain_RejectsTooFewMembers(t *testing.T) {
	arena := widget.NewArena()
	_, err := layoutbuilder.HorizontalChain(0, 50, widget.Spread)(arena, arena.Root())
	require.ErrorIs(t, err, layoutbuilder.ErrTooFewMembers)
}

func TestGrid_AnchorsEachCellToLeftAndTopNeighbor(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()

	ids, err := layoutbuilder.Grid(2, 3, 40, 20)(arena, root)
	require.NoError(t, err)
	require.Len(t, ids, 6)

	cell := func(r, c int) *widget.Widget { return arena.Widget(ids[r*3+c]) }

	require.Equal(t, &widget.AnchorRef{Widget: root, Type: widget.Left}, cell(0, 0).Anchor(widget.Left).Target)
	require.Equal(t, &widget.AnchorRef{Widget: root, Type: widget.Top}, cell(0, 0).Anchor(widget.Top).Target)

	require.Equal(t, &widget.AnchorRef{Widget: ids[0], Type: widget.Right}, cell(0, 1).Anchor(widget.Left).Target)
	require.Equal(t, &widget.AnchorRef{Widget: root, Type: widget.Top}, cell(0, 1).Anchor(widget.Top).Target)

	require.Equal(t, &widget.AnchorRef{Widget: root, Type: widget.Left}, cell(1, 0).Anchor(widget.Left).Target)
	require.Equal(t, &widget.AnchorRef{Widget: ids[0], Type: widget.Bottom}, cell(1, 0).Anchor(widget.Top).Target)
}

func TestGrid_RejectsTooFewDimensions(t *testing.T) {
	arena := widget.NewArena()
	_, err := layoutbuilder.Grid(0, 3, 40, 20)(arena, arena.Root())
	require.ErrorIs(t, err, layoutbuilder.ErrTooFewMembers)
}

func TestPercentGuideline_CreatesHelperWidget(t *testing.T) {
	arena := widget.NewArena()
	ids, err := layoutbuilder.PercentGuideline(widget.Vertical, 0.25)(arena, arena.Root())
	require.NoError(t, err)
	require.Len(t, ids, 1)
	require.True(t, arena.Widget(ids[0]).IsHelper())
}

func TestBarrier_RejectsEmptyMembers(t *testing.T) {
	arena := widget.NewArena()
	_, err := layoutbuilder.Barrier(widget.Horizontal, widget.BarrierMax, nil)(arena, arena.Root())
	require.ErrorIs(t, err, layoutbuilder.ErrTooFewMembers)
}

func TestBuild_RunsConstructorsInOrderAndConcatenatesIDs(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()

	ids, err := layoutbuilder.Build(arena, root,
		layoutbuilder.HorizontalChain(2, 30, widget.Packed),
		layoutbuilder.PercentGuideline(widget.Vertical, 0.5),
	)
	require.NoError(t, err)
	require.Len(t, ids, 3)
}

func TestBuild_WrapsConstructorErrorWithIndex(t *testing.T) {
	arena := widget.NewArena()
	_, err := layoutbuilder.Build(arena, arena.Root(),
		layoutbuilder.HorizontalChain(1, 10, widget.Spread),
		layoutbuilder.Grid(0, 0, 10, 10),
	)
	require.Error(t, err)
	require.ErrorIs(t, err, layoutbuilder.ErrTooFewMembers)
	require.Contains(t, err.Error(), "constructor 1")
}
