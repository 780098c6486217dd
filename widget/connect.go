// SPDX-License-Identifier: MIT
//
// File: connect.go
// Role: anchor-to-anchor connection, type-compatibility checking, and
// the CENTER-decomposition / BASELINE-vs-TOP/BOTTOM reset rules.

package widget

import "github.com/katalvlaran/cassowary/lattice"

type anchorGroup uint8

const (
	groupHorizontal anchorGroup = iota
	groupVertical
	groupBaseline
	groupCenter
)

func groupOf(t AnchorType) anchorGroup {
	switch t {
	case Left, Right, CenterX:
		return groupHorizontal
	case Top, Bottom, CenterY:
		return groupVertical
	case Baseline:
		return groupBaseline
	default: // Center
		return groupCenter
	}
}

// compatible reports whether from may connect to to, per spec
// invariant (i): LEFT/RIGHT/CENTER_X only to each other, TOP/BOTTOM/
// CENTER_Y only to each other, BASELINE only to BASELINE, CENTER only
// to CENTER.
func compatible(from, to AnchorType) bool {
	return groupOf(from) == groupOf(to)
}

// Connect installs from -> to with the given margin and strength on
// the widget owning "from", after checking type compatibility.
// Returns ErrIncompatibleAnchors (and installs nothing) on a mismatch,
// and ErrUnknownWidget if either widget id is not live. A from.Type of
// Center decomposes into both axis pairs against to's widget; a
// from.Type of Top or Bottom resets that widget's Baseline connection,
// and vice versa, per spec §4.4.
func (a *Arena) Connect(fromWidget ID, fromType AnchorType, toWidget ID, toType AnchorType, margin float64, strength lattice.Strength) error {
	fw := a.Widget(fromWidget)
	tw := a.Widget(toWidget)
	if fw == nil || tw == nil {
		return ErrUnknownWidget
	}
	if !compatible(fromType, toType) {
		return ErrIncompatibleAnchors
	}

	if fromType == Center {
		// Decompose into centering both axes: LEFT/RIGHT and TOP/BOTTOM
		// against the target's corresponding edges.
		_ = a.connectSingle(fw, Left, toWidget, Left, margin, strength)
		_ = a.connectSingle(fw, Right, toWidget, Right, margin, strength)
		_ = a.connectSingle(fw, Top, toWidget, Top, margin, strength)
		_ = a.connectSingle(fw, Bottom, toWidget, Bottom, margin, strength)
		return nil
	}

	return a.connectSingle(fw, fromType, toWidget, toType, margin, strength)
}

func (a *Arena) connectSingle(fw *Widget, fromType AnchorType, toWidget ID, toType AnchorType, margin float64, strength lattice.Strength) error {
	anchor := fw.Anchor(fromType)
	anchor.Target = &AnchorRef{Widget: toWidget, Type: toType}
	anchor.Margin = margin
	anchor.Strength = strength

	switch fromType {
	case Top, Bottom:
		fw.Anchor(Baseline).Target = nil
	case Baseline:
		fw.Anchor(Top).Target = nil
		fw.Anchor(Bottom).Target = nil
	}

	return nil
}

// SetGoneMargin sets the margin a connection uses when its target
// widget's visibility is Gone.
func (w *Widget) SetGoneMargin(t AnchorType, margin float64) {
	w.Anchor(t).GoneMargin = margin
}
