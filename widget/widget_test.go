// SPDX-License-Identifier: MIT
package widget_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/widget"
)

func TestArena_CreateWidgetParenting(t *testing.T) {
	a := widget.NewArena()
	child := a.CreateWidget(a.Root())
	require.NotEqual(t, widget.NoWidget, child)

	root := a.Widget(a.Root())
	require.Contains(t, root.Children, child)
	require.Equal(t, a.Root(), a.Widget(child).Parent)
}

func TestConnect_RejectsIncompatibleTypes(t *testing.T) {
	a := widget.NewArena()
	w := a.CreateWidget(a.Root())

	err := a.Connect(w, widget.Left, a.Root(), widget.Top, 0, lattice.Fixed)
	require.ErrorIs(t, err, widget.ErrIncompatibleAnchors)
}

func TestConnect_TopResetsBaseline(t *testing.T) {
	a := widget.NewArena()
	w := a.CreateWidget(a.Root())

	require.NoError(t, a.Connect(w, widget.Baseline, a.Root(), widget.Baseline, 0, lattice.Fixed))
	require.NotNil(t, a.Widget(w).Anchor(widget.Baseline).Target)

	require.NoError(t, a.Connect(w, widget.Top, a.Root(), widget.Top, 0, lattice.Fixed))
	require.Nil(t, a.Widget(w).Anchor(widget.Baseline).Target)
}

func TestConnect_CenterDecomposesIntoFourEdges(t *testing.T) {
	a := widget.NewArena()
	w := a.CreateWidget(a.Root())

	require.NoError(t, a.Connect(w, widget.Center, a.Root(), widget.Center, 0, lattice.Fixed))
	ww := a.Widget(w)
	require.NotNil(t, ww.Anchor(widget.Left).Target)
	require.NotNil(t, ww.Anchor(widget.Right).Target)
	require.NotNil(t, ww.Anchor(widget.Top).Target)
	require.NotNil(t, ww.Anchor(widget.Bottom).Target)
}

func TestParseDimensionRatio(t *testing.T) {
	v, axis, ok := widget.ParseDimensionRatio("W,16:9")
	require.True(t, ok)
	require.Equal(t, widget.Horizontal, axis)
	require.InDelta(t, 16.0/9.0, v, 1e-9)

	v, axis, ok = widget.ParseDimensionRatio("H,1:1")
	require.True(t, ok)
	require.Equal(t, widget.Vertical, axis)
	require.Equal(t, 1.0, v)

	_, _, ok = widget.ParseDimensionRatio("garbage")
	require.False(t, ok)
}

func TestNewGuidelineAndBarrier(t *testing.T) {
	a := widget.NewArena()
	g := a.NewGuideline(a.Root(), widget.Vertical, widget.GuidelineRelative{Mode: widget.GuidelinePercent, Value: 0.5})
	require.True(t, a.Widget(g).IsHelper())

	c1 := a.CreateWidget(a.Root())
	c2 := a.CreateWidget(a.Root())
	b := a.NewBarrier(a.Root(), widget.Horizontal, widget.BarrierMax, []widget.ID{c1, c2})
	require.True(t, a.Widget(b).IsHelper())
	require.Len(t, a.Widget(b).BarrierChildren, 2)
}
