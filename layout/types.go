// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: the optimization bitmask, host-facing measurement interface,
// and Container's functional options.

package layout

import (
	"context"

	"github.com/katalvlaran/cassowary/internal/floatutil"
	"github.com/katalvlaran/cassowary/layoutlog"
	"github.com/katalvlaran/cassowary/widget"
)

// Optimization is a bitmask selecting which fast paths a Container may
// use ahead of the full solver. Values are bit-exact with the wire
// scheme spec.md §6 documents.
type Optimization uint32

const (
	None       Optimization = 0
	Direct     Optimization = 1 << 0
	Barrier    Optimization = 1 << 1
	Chain      Optimization = 1 << 2
	Dimensions Optimization = 1 << 3
	Ratio      Optimization = 1 << 4
	Groups     Optimization = 1 << 5

	Standard = Direct | Barrier | Chain
)

// Has reports whether mask includes flag.
func (mask Optimization) Has(flag Optimization) bool { return mask&flag != 0 }

// MeasureSpec is the constraint a host's measurement callback receives
// along one axis, mirroring Android's MeasureSpec without tying this
// package to any particular UI toolkit.
type MeasureSpec struct {
	Size int
	Mode MeasureSpecMode
}

// MeasureSpecMode selects how MeasureSpec.Size constrains a measurement.
type MeasureSpecMode uint8

const (
	Unspecified MeasureSpecMode = iota
	Exactly
	AtMost
)

// MeasureFunc asks a widget's content for its natural size, outside
// this package's knowledge of what that content actually is. Layout
// does not call it: WRAP_CONTENT widgets are sized from the Width and
// Height (floored by MinW and MinH) already set on them.
type MeasureFunc func(ctx context.Context, w *widget.Widget, hc, vc MeasureSpec) (naturalW, naturalH, baseline int)

// Option configures a Container at construction time.
type Option func(*Container)

// WithOptimizations overrides the default Standard optimization mask.
func WithOptimizations(mask Optimization) Option {
	return func(c *Container) { c.optimizations = mask }
}

// WithLogger attaches a logger used for this Container's diagnostics.
func WithLogger(log *layoutlog.Logger) Option {
	return func(c *Container) { c.log = log }
}

// WithEpsilon records a tolerance on the Container. Values <= 0 are
// ignored. The solver does not read it: its coefficient clamping always
// uses floatutil.Epsilon.
func WithEpsilon(epsilon float64) Option {
	return func(c *Container) {
		if epsilon > 0 {
			c.epsilon = epsilon
		}
	}
}

// WithMeasureFunc stores the host's content-measurement callback on the
// Container. Layout does not call it; see MeasureFunc.
func WithMeasureFunc(fn MeasureFunc) Option {
	return func(c *Container) { c.measure = fn }
}

// WithLayoutDirection overrides the default LeftToRight direction used
// to pick a horizontal chain's head widget.
func WithLayoutDirection(direction widget.Direction) Option {
	return func(c *Container) { c.direction = direction }
}

func defaultEpsilon() float64 { return floatutil.Epsilon }
