// SPDX-License-Identifier: MIT
//
// File: pool.go
// Role: Pool owns every Variable, Row and sparse cell for one solver
// instance. It is never shared across containers (spec: "not shared
// across containers"), and Reset returns everything to its free lists
// between layout passes so ids and pooled storage behave identically
// on every pass given the same input graph.

package lattice

// Pool allocates and recycles Variables, Rows and the cells their
// SparseRows are built from. A Pool belongs to exactly one
// tableau.System; never share one across systems.
type Pool struct {
	nextVariableID int

	variables    []*Variable
	freeVars     []*Variable
	rows         []*Row
	freeRows     []*Row
	freeCells    []*cell
	peakRowCount int
}

// NewPool constructs an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

// Acquire returns a Variable of the given Kind, either freshly
// allocated or recycled from a prior Reset. It gets its Kind and the
// pool's next id here; its strength stays None unless it comes from
// AcquireWithStrength.
func (p *Pool) Acquire(kind Kind) *Variable {
	var v *Variable
	if n := len(p.freeVars); n > 0 {
		v = p.freeVars[n-1]
		p.freeVars = p.freeVars[:n-1]
		*v = Variable{}
	} else {
		v = &Variable{}
	}
	v.id = p.nextVariableID
	p.nextVariableID++
	v.kind = kind
	p.variables = append(p.variables, v)

	return v
}

// AcquireWithStrength is a convenience wrapper for Error/Slack
// variables, which are always tagged with the strength of the
// constraint that introduced them.
func (p *Pool) AcquireWithStrength(kind Kind, strength Strength) *Variable {
	v := p.Acquire(kind)
	v.strength = strength

	return v
}

// Release returns a single Variable to the pool ahead of a full Reset.
// Rarely needed directly; most callers rely on Reset between passes.
func (p *Pool) Release(v *Variable) {
	if v == nil {
		return
	}
	p.freeVars = append(p.freeVars, v)
}

// CreateRow returns a fresh, empty Row whose Coeffs is backed by this
// pool's cell free list.
func (p *Pool) CreateRow() *Row {
	var row *Row
	if n := len(p.freeRows); n > 0 {
		row = p.freeRows[n-1]
		p.freeRows = p.freeRows[:n-1]
		row.Pivot = nil
		row.Constant = 0
		row.IsSimpleDefinition = true
	} else {
		row = &Row{
			IsSimpleDefinition: true,
			Coeffs: &SparseRow{
				index: make(map[*Variable]*cell),
				pool:  p,
			},
		}
		row.Coeffs.owner = row
	}
	p.rows = append(p.rows, row)
	if len(p.rows) > p.peakRowCount {
		p.peakRowCount = len(p.rows)
	}

	return row
}

// ReleaseRow untracks the row's client references, empties its
// coefficient map back into the cell free list, and returns the row
// itself to the row free list.
func (p *Pool) ReleaseRow(row *Row) {
	if row == nil {
		return
	}
	row.Coeffs.reset()
	row.Pivot = nil
	row.Constant = 0
	row.IsSimpleDefinition = true

	for i, r := range p.rows {
		if r == row {
			p.rows[i] = p.rows[len(p.rows)-1]
			p.rows = p.rows[:len(p.rows)-1]
			break
		}
	}
	p.freeRows = append(p.freeRows, row)
}

// getCell and putCell manage the pool's cell free list, shared by every
// SparseRow the pool backs.
func (p *Pool) getCell() *cell {
	if n := len(p.freeCells); n > 0 {
		c := p.freeCells[n-1]
		p.freeCells = p.freeCells[:n-1]
		*c = cell{}
		return c
	}

	return &cell{}
}

func (p *Pool) putCell(c *cell) {
	c.variable = nil
	c.next = nil
	p.freeCells = append(p.freeCells, c)
}

// Reset releases every row and variable acquired since the last Reset
// (or since construction) and rewinds id assignment, so a subsequent
// layout pass starts from the same state as the first. Peak pooled-row
// count (PeakRows) is preserved across Reset so callers can assert pool
// discipline (invariant 8 in spec.md §8).
func (p *Pool) Reset() {
	for _, row := range append([]*Row(nil), p.rows...) {
		p.ReleaseRow(row)
	}
	for _, v := range p.variables {
		p.freeVars = append(p.freeVars, v)
	}
	p.variables = p.variables[:0]
	p.nextVariableID = 0
}

// Variables returns the pool's currently active variables. The slice is
// owned by the pool; callers must not retain it across a Reset.
func (p *Pool) Variables() []*Variable { return p.variables }

// Stats reports pool occupancy for diagnostics and the pool-discipline
// property test.
type Stats struct {
	ActiveVariables int
	ActiveRows      int
	PeakRows        int
}

// Stats returns a snapshot of current pool occupancy.
func (p *Pool) Stats() Stats {
	return Stats{
		ActiveVariables: len(p.variables),
		ActiveRows:      len(p.rows),
		PeakRows:        p.peakRowCount,
	}
}
