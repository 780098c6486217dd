// SPDX-License-Identifier: MIT

// Package lattice owns the solver's variable pool and sparse row store:
// the arena of interned Variable values the tableau pivots over, and the
// pooled SparseRow coefficient maps that back every Row in package
// tableau.
//
// Variables are acquired from a Pool, get a stable small integer id when
// acquired, and are returned to the pool in one shot by Pool.Reset
// between layout passes, which also restarts the id sequence. SparseRow supports
// insert/overwrite, remove, get, size, stable-order iteration, sign
// inversion, scalar division and scaled merge, all in time proportional
// to the size of the row being touched — the operations package tableau
// needs to keep a pivot O(size(row)) instead of O(#variables).
package lattice
