// SPDX-License-Identifier: MIT
//
// Package layout orchestrates one full measure-and-place pass over a
// widget.Arena: it partitions wrap-content parents (group), attempts
// arithmetic resolution before reaching for the solver (direct),
// compiles whatever is left into rows (compiler, chain), minimizes
// (tableau), and writes the solved geometry back onto the arena's
// widgets.
package layout
