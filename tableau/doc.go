// SPDX-License-Identifier: MIT
//
// Package tableau implements the Simplex core: a System owns one
// lattice.Pool and drives the row-replacement insertion algorithm, the
// two-phase BFS-restoration-then-descent solve, and readback of
// computed values. Callers build constraint rows through the rows
// package (or hand-build a lattice.Row for AddConstraint) and never
// touch pivoting directly.
package tableau
