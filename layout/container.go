// SPDX-License-Identifier: MIT
//
// File: container.go
// Role: Container and its single orchestration entry point, Layout.

package layout

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/cassowary/chain"
	"github.com/katalvlaran/cassowary/compiler"
	"github.com/katalvlaran/cassowary/direct"
	"github.com/katalvlaran/cassowary/group"
	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/layoutlog"
	"github.com/katalvlaran/cassowary/tableau"
	"github.com/katalvlaran/cassowary/widget"
)

// pinResolvedAnchors ties every skip-resolved widget's anchor variables
// to constants equal to its direct-resolved frame, so a non-skipped
// widget that connects to one still gets the right value even though
// it never goes through compiler.Compile's own dispatch for that
// widget.
func pinResolvedAnchors(sys *tableau.System, arena *widget.Arena, skip map[widget.ID]bool, log *layoutlog.Logger) {
	pool := sys.Pool()
	for id := range skip {
		w := arena.Widget(id)
		l, t, r, b, ok := w.Frame()
		if !ok {
			continue
		}
		pins := []struct {
			t widget.AnchorType
			v float64
		}{{widget.Left, l}, {widget.Top, t}, {widget.Right, r}, {widget.Bottom, b}}
		for _, pin := range pins {
			av := w.Anchor(pin.t).Variable(pool)
			if err := sys.AddEqualityConstant(av, pin.v, lattice.Fixed); err != nil {
				log.Error(err, "failed to pin a direct-resolved anchor; that connection will be under-constrained")
			}
		}
	}
}

// Container owns one widget tree and the solver state used to lay it
// out across repeated passes.
type Container struct {
	arena *widget.Arena

	optimizations Optimization
	log           *layoutlog.Logger
	epsilon       float64
	measure       MeasureFunc
	direction     widget.Direction
}

// NewContainer wraps arena for layout, applying opts over the default
// configuration (Standard optimizations, a disabled logger).
func NewContainer(arena *widget.Arena, opts ...Option) *Container {
	c := &Container{
		arena:         arena,
		optimizations: Standard,
		log:           layoutlog.Disabled(),
		epsilon:       defaultEpsilon(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = layoutlog.Disabled()
	}
	return c
}

// Arena returns the container's underlying widget tree.
func (c *Container) Arena() *widget.Arena { return c.arena }

// Layout runs one full measure-and-place pass: group partitioning to
// seed wrap-content parents, direct resolution of whatever it can
// settle arithmetically, compilation of everything else into solver
// rows (with chain styling layered on top), minimization, and
// writeback. ctx is checked for cancellation between stages only —
// no stage itself suspends mid-pass.
func (c *Container) Layout(ctx context.Context) error {
	passID := uuid.New()
	log := c.log.With("pass", passID.String())
	log.Debug("layout pass starting")

	c.arena.ResetVariables()

	if err := ctx.Err(); err != nil {
		return err
	}
	if c.optimizations.Has(Groups) {
		c.seedWrapContentParents(log)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	chainMembers, chains := c.findChains()

	sys := tableau.NewSystem(tableau.WithLogger(log))

	var skip map[widget.ID]bool
	if c.optimizations.Has(Direct) {
		result := direct.Resolve(c.arena, chainMembers)
		result.Apply(c.arena)
		skip = result.Skip
		pinResolvedAnchors(sys, c.arena, skip, log)
		log.Debug("direct optimizer resolved a subset of widgets")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := compiler.Compile(sys, c.arena, skip); err != nil {
		log.Error(err, "compile produced one or more widget-level errors; continuing best-effort")
	}

	if c.optimizations.Has(Chain) {
		for _, ch := range chains {
			if err := chain.Compile(sys, c.arena, ch); err != nil {
				log.Error(err, "chain compile failed for one chain; continuing best-effort")
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	outcome, err := sys.Minimize()
	if err != nil {
		log.Error(err, "minimize reported a programmer-misuse error; degrading to best-effort")
	}
	if outcome == tableau.BestEffort {
		log.Warn("layout pass degraded to best-effort")
	}

	c.writeback(sys, skip)
	log.Debug("layout pass complete")
	return nil
}

// findChains detects every chain in the arena along both axes and
// returns the set of widget ids that participate in one, so the direct
// optimizer knows to leave them alone.
func (c *Container) findChains() (map[widget.ID]bool, []chain.Chain) {
	members := make(map[widget.ID]bool)
	var all []chain.Chain
	for _, axis := range []widget.Axis{widget.Horizontal, widget.Vertical} {
		for _, ch := range chain.Find(c.arena, axis, c.direction) {
			all = append(all, ch)
			for _, id := range ch.Members {
				members[id] = true
			}
		}
	}
	return members, all
}

// seedWrapContentParents partitions every wrap-content parent's
// children and, when the partition is eligible, sets that parent's
// measured dimension from the partition's max component extent ahead
// of compilation.
func (c *Container) seedWrapContentParents(log *layoutlog.Logger) {
	for i := 0; i < c.arena.Len(); i++ {
		w := c.arena.Widget(widget.ID(i))
		if w == nil || w.IsHelper() || len(w.Children) == 0 {
			continue
		}
		for _, axis := range []widget.Axis{widget.Horizontal, widget.Vertical} {
			if !isWrapContent(w, axis) {
				continue
			}
			components, eligible := group.Partition(c.arena, w.ID, axis)
			if !eligible {
				continue
			}
			maxExtent := 0.0
			allOK := true
			for _, comp := range components {
				extent, ok := group.Extent(c.arena, w.ID, axis, comp)
				if !ok {
					allOK = false
					break
				}
				if extent > maxExtent {
					maxExtent = extent
				}
			}
			if !allOK {
				continue
			}
			setSize(w, axis, maxExtent)
			log.Debug("group analyzer seeded a wrap-content parent")
		}
	}
}

func isWrapContent(w *widget.Widget, axis widget.Axis) bool {
	if axis == widget.Horizontal {
		return w.BehaviorH == widget.WrapContent
	}
	return w.BehaviorV == widget.WrapContent
}

func setSize(w *widget.Widget, axis widget.Axis, size float64) {
	if axis == widget.Horizontal {
		w.Width = size
	} else {
		w.Height = size
	}
}

// writeback publishes every non-skipped widget's solved anchor
// variables as a frame, helpers included. GONE widgets collapse to a zero frame
// at their left/top anchor's resolved position, per spec.md §4.4.
func (c *Container) writeback(sys *tableau.System, skip map[widget.ID]bool) {
	pool := sys.Pool()
	for i := 0; i < c.arena.Len(); i++ {
		id := widget.ID(i)
		if skip != nil && skip[id] {
			continue
		}
		w := c.arena.Widget(id)

		left := w.Anchor(widget.Left).Variable(pool).Value()
		top := w.Anchor(widget.Top).Variable(pool).Value()
		right := w.Anchor(widget.Right).Variable(pool).Value()
		bottom := w.Anchor(widget.Bottom).Variable(pool).Value()

		if w.Visibility == widget.Gone {
			w.SetFrame(left, top, left, top)
			continue
		}
		w.SetFrame(left, top, right, bottom)
	}
}
