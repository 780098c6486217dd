// SPDX-License-Identifier: MIT
//
// File: schema.go
// Role: the JSON document this command reads, and its translation into
// a widget.Arena. The schema is deliberately small: one widget list,
// each entry naming its own anchors by target id, mirroring the
// arena's own id-indexed, anchor-by-reference model instead of
// inventing a parallel vocabulary for it.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/layout"
	"github.com/katalvlaran/cassowary/widget"
)

// document is the root of a layout description file.
type document struct {
	Width         float64       `json:"width"`
	Height        float64       `json:"height"`
	Optimizations []string      `json:"optimizations,omitempty"`
	Widgets       []widgetDoc   `json:"widgets"`
}

// widgetDoc describes one widget. ID is a caller-chosen name, unique
// within the document; Parent names another widget's ID, or "" for
// the document's implicit root.
type widgetDoc struct {
	ID         string               `json:"id"`
	Parent     string               `json:"parent,omitempty"`
	BehaviorH  string               `json:"behaviorH,omitempty"`
	BehaviorV  string               `json:"behaviorV,omitempty"`
	Width      float64              `json:"width,omitempty"`
	Height     float64              `json:"height,omitempty"`
	MinWidth   float64              `json:"minWidth,omitempty"`
	MinHeight  float64              `json:"minHeight,omitempty"`
	BiasH      float64              `json:"biasH,omitempty"`
	BiasV      float64              `json:"biasV,omitempty"`
	Visibility string               `json:"visibility,omitempty"`
	Ratio      string               `json:"ratio,omitempty"`
	Anchors    map[string]anchorDoc `json:"anchors,omitempty"`
}

// anchorDoc connects one of a widget's anchors to a named target's
// anchor.
type anchorDoc struct {
	Target     string  `json:"target"`
	Type       string  `json:"type"`
	Margin     float64 `json:"margin,omitempty"`
	GoneMargin float64 `json:"goneMargin,omitempty"`
	Strength   string  `json:"strength,omitempty"`
}

// build constructs an arena from doc, returning the id each widgetDoc
// was assigned, keyed by its document-level ID string. Widgets must
// appear after their parent in the document; a forward reference is a
// parse error.
func build(doc *document) (*widget.Arena, map[string]widget.ID, error) {
	arena := widget.NewArena()
	root := arena.Widget(arena.Root())
	root.SetDimensionBehavior(widget.Horizontal, widget.Fixed)
	root.SetDimensionBehavior(widget.Vertical, widget.Fixed)
	root.Width = doc.Width
	root.Height = doc.Height

	ids := map[string]widget.ID{"": arena.Root()}

	for _, wd := range doc.Widgets {
		if wd.ID == "" {
			return nil, nil, fmt.Errorf("widget with empty id")
		}
		if _, dup := ids[wd.ID]; dup {
			return nil, nil, fmt.Errorf("widget %q: duplicate id", wd.ID)
		}
		parent, ok := ids[wd.Parent]
		if !ok {
			return nil, nil, fmt.Errorf("widget %q: unknown parent %q (must appear earlier)", wd.ID, wd.Parent)
		}
		id := arena.CreateWidget(parent)
		ids[wd.ID] = id
	}

	for _, wd := range doc.Widgets {
		w := arena.Widget(ids[wd.ID])
		if err := applyWidget(w, wd); err != nil {
			return nil, nil, fmt.Errorf("widget %q: %w", wd.ID, err)
		}
	}

	for _, wd := range doc.Widgets {
		w := arena.Widget(ids[wd.ID])
		for key, ad := range wd.Anchors {
			anchorType, err := parseAnchorType(key)
			if err != nil {
				return nil, nil, fmt.Errorf("widget %q: anchor %q: %w", wd.ID, key, err)
			}
			targetID, ok := ids[ad.Target]
			if !ok {
				return nil, nil, fmt.Errorf("widget %q: anchor %q: unknown target %q", wd.ID, key, ad.Target)
			}
			targetType, err := parseAnchorType(ad.Type)
			if err != nil {
				return nil, nil, fmt.Errorf("widget %q: anchor %q: target type: %w", wd.ID, key, err)
			}
			strength := lattice.High
			if ad.Strength != "" {
				strength, err = parseStrength(ad.Strength)
				if err != nil {
					return nil, nil, fmt.Errorf("widget %q: anchor %q: %w", wd.ID, key, err)
				}
			}
			a := w.Anchor(anchorType)
			a.Target = &widget.AnchorRef{Widget: targetID, Type: targetType}
			a.Margin = ad.Margin
			a.GoneMargin = ad.GoneMargin
			a.Strength = strength
		}
	}

	return arena, ids, nil
}

func applyWidget(w *widget.Widget, wd widgetDoc) error {
	if wd.BehaviorH != "" {
		b, err := parseBehavior(wd.BehaviorH)
		if err != nil {
			return fmt.Errorf("behaviorH: %w", err)
		}
		w.SetDimensionBehavior(widget.Horizontal, b)
	}
	if wd.BehaviorV != "" {
		b, err := parseBehavior(wd.BehaviorV)
		if err != nil {
			return fmt.Errorf("behaviorV: %w", err)
		}
		w.SetDimensionBehavior(widget.Vertical, b)
	}
	w.Width = wd.Width
	w.Height = wd.Height
	w.MinW = wd.MinWidth
	w.MinH = wd.MinHeight
	if wd.BiasH != 0 {
		w.SetBias(widget.Horizontal, wd.BiasH)
	}
	if wd.BiasV != 0 {
		w.SetBias(widget.Vertical, wd.BiasV)
	}
	if wd.Visibility != "" {
		v, err := parseVisibility(wd.Visibility)
		if err != nil {
			return fmt.Errorf("visibility: %w", err)
		}
		w.Visibility = v
	}
	if wd.Ratio != "" {
		w.SetDimensionRatio(wd.Ratio)
	}
	return nil
}

func parseAnchorType(s string) (widget.AnchorType, error) {
	switch s {
	case "left":
		return widget.Left, nil
	case "top":
		return widget.Top, nil
	case "right":
		return widget.Right, nil
	case "bottom":
		return widget.Bottom, nil
	case "baseline":
		return widget.Baseline, nil
	case "centerX":
		return widget.CenterX, nil
	case "centerY":
		return widget.CenterY, nil
	case "center":
		return widget.Center, nil
	default:
		return 0, fmt.Errorf("unknown anchor type %q", s)
	}
}

func parseBehavior(s string) (widget.Behavior, error) {
	switch s {
	case "fixed":
		return widget.Fixed, nil
	case "wrap_content":
		return widget.WrapContent, nil
	case "match_constraint":
		return widget.MatchConstraint, nil
	case "match_parent":
		return widget.MatchParent, nil
	default:
		return 0, fmt.Errorf("unknown behavior %q", s)
	}
}

func parseVisibility(s string) (widget.Visibility, error) {
	switch s {
	case "visible":
		return widget.Visible, nil
	case "invisible":
		return widget.Invisible, nil
	case "gone":
		return widget.Gone, nil
	default:
		return 0, fmt.Errorf("unknown visibility %q", s)
	}
}

func parseStrength(s string) (lattice.Strength, error) {
	switch s {
	case "low":
		return lattice.Low, nil
	case "medium":
		return lattice.Medium, nil
	case "high":
		return lattice.High, nil
	case "highest":
		return lattice.Highest, nil
	case "equality":
		return lattice.Equality, nil
	case "fixed":
		return lattice.Fixed, nil
	default:
		return 0, fmt.Errorf("unknown strength %q", s)
	}
}

func parseOptimizations(names []string) (layout.Optimization, error) {
	var mask layout.Optimization
	for _, n := range names {
		switch n {
		case "direct":
			mask |= layout.Direct
		case "barrier":
			mask |= layout.Barrier
		case "chain":
			mask |= layout.Chain
		case "dimensions":
			mask |= layout.Dimensions
		case "ratio":
			mask |= layout.Ratio
		case "groups":
			mask |= layout.Groups
		case "standard":
			mask |= layout.Standard
		default:
			return 0, fmt.Errorf("unknown optimization %q", n)
		}
	}
	return mask, nil
}

func decodeDocument(data []byte) (*document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode layout document: %w", err)
	}
	return &doc, nil
}
