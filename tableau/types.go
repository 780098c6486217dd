// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: System, Outcome and the functional options that configure a System.

package tableau

import (
	"github.com/katalvlaran/cassowary/lattice"
	"github.com/katalvlaran/cassowary/layoutlog"
)

// Outcome reports how a Minimize call finished.
type Outcome uint8

const (
	// Optimal means BFS restoration and descent both converged normally.
	Optimal Outcome = iota
	// BestEffort means the system hit the iteration cap or found no
	// feasible pivot somewhere; readback still runs on whatever state the
	// tableau reached, so every variable still has a defined value.
	BestEffort
)

// String renders Outcome for log lines and test failure messages.
func (o Outcome) String() string {
	if o == Optimal {
		return "optimal"
	}
	return "best-effort"
}

const defaultIterationCap = 10000

// System is one Cassowary-style linear system: a pool of variables, a
// set of active rows, and a goal row rebuilt fresh on every Minimize.
// A System is not safe for concurrent use; callers serialize access to
// one Container's solve pass the same way they do everywhere else in
// this module.
type System struct {
	pool *lattice.Pool
	rows []*lattice.Row
	goal *lattice.Row

	objectVars map[any]*lattice.Variable

	log          *layoutlog.Logger
	iterationCap int
	lastOutcome  Outcome
}

// Option configures a System at construction time.
type Option func(*System)

// WithLogger attaches a logger used to report BFS/descent degradation.
// A nil logger (the default) silently discards these diagnostics.
func WithLogger(log *layoutlog.Logger) Option {
	return func(s *System) { s.log = log }
}

// WithIterationCap overrides the default bound on BFS/descent pivot
// steps. Exists mainly for tests that want to observe BestEffort on a
// deliberately pathological system without waiting out 10000 pivots.
func WithIterationCap(n int) Option {
	return func(s *System) {
		if n > 0 {
			s.iterationCap = n
		}
	}
}

// NewSystem constructs a System with its own private lattice.Pool.
func NewSystem(opts ...Option) *System {
	s := &System{
		pool:         lattice.NewPool(),
		objectVars:   make(map[any]*lattice.Variable),
		iterationCap: defaultIterationCap,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pool returns the System's backing variable pool, so callers (the
// compiler package, chiefly) can acquire anchor variables against the
// same pool the System will solve over.
func (s *System) Pool() *lattice.Pool { return s.pool }

// LastOutcome reports the Outcome of the most recent Minimize call, or
// Optimal if Minimize has never been called.
func (s *System) LastOutcome() Outcome { return s.lastOutcome }
