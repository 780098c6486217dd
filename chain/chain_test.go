// SPDX-License-Identifier: MIT

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/tableau"
	"github.com/katalvlaran/cassowary/widget"
)

func link(arena *widget.Arena, a, b widget.ID, aEnd, bStart widget.AnchorType) {
	arena.Widget(a).Anchor(aEnd).Target = &widget.AnchorRef{Widget: b, Type: bStart}
	arena.Widget(a).Anchor(aEnd).Strength = lattice.High
	arena.Widget(b).Anchor(bStart).Target = &widget.AnchorRef{Widget: a, Type: aEnd}
	arena.Widget(b).Anchor(bStart).Strength = lattice.High
}

func threeInARow(t *testing.T) (*widget.Arena, widget.ID, widget.ID, widget.ID) {
	t.Helper()
	arena := widget.NewArena()
	root := arena.Root()
	a := arena.CreateWidget(root)
	b := arena.CreateWidget(root)
	c := arena.CreateWidget(root)
	link(arena, a, b, widget.Right, widget.Left)
	link(arena, b, c, widget.Right, widget.Left)
	return arena, a, b, c
}

func TestFind_DetectsThreeMemberChain(t *testing.T) {
	arena, a, b, c := threeInARow(t)
	chains := Find(arena, widget.Horizontal, widget.LeftToRight)
	require.Len(t, chains, 1)
	require.Equal(t, []widget.ID{a, b, c}, chains[0].Members)
	require.Equal(t, 0, chains[0].HeadIndex)
}

func TestFind_IgnoresUnlinkedWidgets(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()
	arena.CreateWidget(root)
	arena.CreateWidget(root)
	chains := Find(arena, widget.Horizontal, widget.LeftToRight)
	require.Empty(t, chains)
}

func TestFind_RightToLeftMovesHeadToLastMember(t *testing.T) {
	arena, a, b, c := threeInARow(t)
	chains := Find(arena, widget.Horizontal, widget.RightToLeft)
	require.Len(t, chains, 1)
	require.Equal(t, []widget.ID{a, b, c}, chains[0].Members)
	require.Equal(t, 2, chains[0].HeadIndex)
	require.Equal(t, c, chains[0].Head(arena).ID)
}

func TestFind_RightToLeftDoesNotAffectVerticalChains(t *testing.T) {
	arena := widget.NewArena()
	root := arena.Root()
	a := arena.CreateWidget(root)
	b := arena.CreateWidget(root)
	link(arena, a, b, widget.Bottom, widget.Top)

	chains := Find(arena, widget.Vertical, widget.RightToLeft)
	require.Len(t, chains, 1)
	require.Equal(t, 0, chains[0].HeadIndex)
}

func TestCompile_RightToLeftPackedReadsStyleFromLastMember(t *testing.T) {
	arena, _, _, c := threeInARow(t)
	arena.Widget(c).SetChainStyle(widget.Horizontal, widget.Packed)

	sys := tableau.NewSystem()
	chain := Find(arena, widget.Horizontal, widget.RightToLeft)[0]
	require.NoError(t, Compile(sys, arena, chain))

	outcome, err := sys.Minimize()
	require.NoError(t, err)
	require.Equal(t, tableau.Optimal, outcome)
}

func TestCompile_PackedAddsSequentialFixedAdjacency(t *testing.T) {
	arena, a, b, _ := threeInARow(t)
	arena.Widget(a).SetChainStyle(widget.Horizontal, widget.Packed)

	sys := tableau.NewSystem()
	c := Find(arena, widget.Horizontal, widget.LeftToRight)[0]
	require.NoError(t, Compile(sys, arena, c))

	outcome, err := sys.Minimize()
	require.NoError(t, err)
	require.Equal(t, tableau.Optimal, outcome)

	_ = b
}

func TestCompile_WeightedMatchConstraintSplitsEqually(t *testing.T) {
	arena, a, b, _ := threeInARow(t)
	arena.Widget(a).SetDimensionBehavior(widget.Horizontal, widget.MatchConstraint)
	arena.Widget(b).SetDimensionBehavior(widget.Horizontal, widget.MatchConstraint)
	arena.Widget(a).SetWeight(widget.Horizontal, -1)
	arena.Widget(b).SetWeight(widget.Horizontal, -1)

	sys := tableau.NewSystem()
	c := Find(arena, widget.Horizontal, widget.LeftToRight)[0]
	require.NoError(t, compileWeights(sys, arena, c, widget.Left, widget.Right))
}
