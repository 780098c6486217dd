// SPDX-License-Identifier: MIT
//
// Package rows builds the zero-form lattice.Row shapes the layout
// compiler needs: `Constant + Σ coeff·var = 0`, unpivoted, ready for
// tableau.System.AddConstraint or for tableau's strength-wrapped ops.
// Every constructor here only shapes coefficients; none of them touch
// strength, pivoting, or the goal row — that belongs to tableau.
package rows
