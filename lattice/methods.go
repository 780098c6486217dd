// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: SparseRow coefficient-map operations and Row convenience methods.
//
// Client tracking: every Variable keeps the set of rows that currently
// reference it on their RHS. That set is updated right here, inside Set
// and Remove, the moment a coefficient becomes or stops being present —
// not by a separate bulk pass — so the tableau's row-replacement step
// can always ask a variable "who references me" without walking every
// row in the system.

package lattice

import "github.com/katalvlaran/cassowary/internal/floatutil"

// Set inserts or overwrites the coefficient of v in the row. A zero
// coefficient still occupies a cell (callers that want to drop a
// variable entirely should call Remove).
func (r *SparseRow) Set(v *Variable, coeff float64) {
	if c, ok := r.index[v]; ok {
		c.coeff = coeff
		return
	}

	c := r.pool.getCell()
	c.variable = v
	c.coeff = coeff
	c.next = nil

	if r.tail == nil {
		r.head = c
		r.tail = c
	} else {
		r.tail.next = c
		r.tail = c
	}
	r.index[v] = c
	r.size++

	if r.owner != nil {
		v.addClient(r.owner)
		r.owner.IsSimpleDefinition = false
	}
}

// Get returns the coefficient of v in the row, and whether v is present.
func (r *SparseRow) Get(v *Variable) (float64, bool) {
	c, ok := r.index[v]
	if !ok {
		return 0, false
	}

	return c.coeff, true
}

// Remove deletes v from the row. It is a no-op if v is not present.
func (r *SparseRow) Remove(v *Variable) {
	c, ok := r.index[v]
	if !ok {
		return
	}
	delete(r.index, v)
	r.size--

	if c == r.head {
		r.head = c.next
		if r.head == nil {
			r.tail = nil
		}
	} else {
		for p := r.head; p != nil; p = p.next {
			if p.next == c {
				p.next = c.next
				if c == r.tail {
					r.tail = p
				}
				break
			}
		}
	}
	r.pool.putCell(c)

	if r.owner != nil {
		v.removeClient(r.owner)
		r.owner.IsSimpleDefinition = r.size == 0
	}
}

// Len returns the number of (variable, coefficient) entries in the row.
func (r *SparseRow) Len() int { return r.size }

// Each iterates the row's entries in insertion order, stopping early if
// fn returns false. Do not call Set/Remove on r from within fn; collect
// the variables to touch first if you need to mutate while iterating.
func (r *SparseRow) Each(fn func(v *Variable, coeff float64) bool) {
	for c := r.head; c != nil; c = c.next {
		if !fn(c.variable, c.coeff) {
			return
		}
	}
}

// Negate inverts the sign of every coefficient in O(size(row)).
func (r *SparseRow) Negate() {
	for c := r.head; c != nil; c = c.next {
		c.coeff = -c.coeff
	}
}

// DivideBy divides every coefficient by amount in O(size(row)). amount
// near zero is rejected with ErrZeroDivision rather than producing Inf.
func (r *SparseRow) DivideBy(amount float64) error {
	if floatutil.IsZero(amount) {
		return ErrZeroDivision
	}
	for c := r.head; c != nil; c = c.next {
		c.coeff = floatutil.Clamp(c.coeff / amount)
	}

	return nil
}

// MergeScaled adds alpha*other into r in O(size(other)), i.e. performs
// the "merge in α·row₂" operation row replacement needs when
// substituting a defining row into a newly-added row. Safe to call with
// other == r's own former state only if other was snapshotted first;
// typical callers pass a different row's Coeffs.
func (r *SparseRow) MergeScaled(other *SparseRow, alpha float64) {
	if other == nil || floatutil.IsZero(alpha) {
		return
	}

	// Snapshot first: other may alias r's own free list bookkeeping if
	// a caller ever merges a row into itself; collecting pairs up front
	// keeps the mutation below safe regardless.
	type pair struct {
		v *Variable
		c float64
	}
	pairs := make([]pair, 0, other.Len())
	other.Each(func(v *Variable, coeff float64) bool {
		pairs = append(pairs, pair{v, coeff})
		return true
	})

	for _, pr := range pairs {
		existing, ok := r.Get(pr.v)
		merged := floatutil.Clamp(existing + alpha*pr.c)
		switch {
		case merged == 0 && ok:
			r.Remove(pr.v)
		case merged != 0:
			r.Set(pr.v, merged)
		}
	}
}

// reset empties the row's coefficient map, returning all its cells to
// the pool's free list and untracking every client reference, so the
// row can be handed back out by CreateRow.
func (r *SparseRow) reset() {
	for c := r.head; c != nil; {
		next := c.next
		if r.owner != nil {
			c.variable.removeClient(r.owner)
		}
		r.pool.putCell(c)
		c = next
	}
	r.head = nil
	r.tail = nil
	r.size = 0
	for k := range r.index {
		delete(r.index, k)
	}
	if r.owner != nil {
		r.owner.IsSimpleDefinition = true
	}
}

// addClient records that row mentions v on its RHS.
func (v *Variable) addClient(row *Row) {
	if v.clientRows == nil {
		v.clientRows = make(map[*Row]struct{})
	}
	v.clientRows[row] = struct{}{}
}

// removeClient forgets that row mentions v on its RHS.
func (v *Variable) removeClient(row *Row) {
	delete(v.clientRows, row)
}

// ClientRows returns the set of rows mentioning v on their RHS, used by
// the tableau's row-replacement step to find rows that must be updated
// when v starts or stops being a pivot.
func (v *Variable) ClientRows() map[*Row]struct{} {
	return v.clientRows
}

// RecomputeSimpleDefinition refreshes IsSimpleDefinition from the
// current coefficient map's size. Set/Remove keep it current as they
// go; this is for callers that built a row by some other means.
func (row *Row) RecomputeSimpleDefinition() {
	row.IsSimpleDefinition = row.Coeffs.Len() == 0
}

// SetValue assigns a variable's computed value. Used by the tableau's
// readback step, and occasionally by callers that pin a variable
// directly (e.g. the permanent constant-one variable).
func (v *Variable) SetValue(x float64) { v.value = x }

// SetDefiningRow records which row currently treats v as its pivot, or
// clears the link by passing nil. Used by the tableau's pivot step.
func (v *Variable) SetDefiningRow(row *Row) { v.definingRow = row }
