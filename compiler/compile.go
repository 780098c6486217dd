// SPDX-License-Identifier: MIT
//
// File: compile.go
// Role: the top-level per-widget dispatch.

package compiler

import (
	"go.uber.org/multierr"

	"github.com/katalvlaran/cassowary/tableau"
	"github.com/katalvlaran/cassowary/widget"
)

// Compile walks every widget in arena and inserts the rows its anchors,
// dimension behavior, ratio and bias demand into sys. Widgets whose id
// is present (and true) in skip get no rows from here — the caller (the
// direct optimizer, via layout.Container) has already written their
// frame directly and pins their anchor variables to that frame as
// Fixed constants itself.
func Compile(sys *tableau.System, arena *widget.Arena, skip map[widget.ID]bool) error {
	pool := sys.Pool()
	var errs error

	for i := 0; i < arena.Len(); i++ {
		id := widget.ID(i)
		if skip != nil && skip[id] {
			continue
		}
		w := arena.Widget(id)

		switch w.Kind {
		case widget.GuidelineKind:
			errs = multierr.Append(errs, compileGuideline(sys, pool, arena, w))
			continue
		case widget.BarrierKind:
			errs = multierr.Append(errs, compileBarrier(sys, pool, arena, w))
			continue
		}

		errs = multierr.Append(errs, compileAxis(sys, pool, arena, w, widget.Horizontal))
		errs = multierr.Append(errs, compileAxis(sys, pool, arena, w, widget.Vertical))
		errs = multierr.Append(errs, compileCenterAnchors(sys, pool, w))
		errs = multierr.Append(errs, compileBaseline(sys, pool, arena, w))

		if w.RatioSet {
			errs = multierr.Append(errs, compileRatio(sys, w))
		}
		if w.CircularTarget != widget.NoWidget {
			errs = multierr.Append(errs, compileCircular(sys, arena, w))
		}
	}

	return errs
}
