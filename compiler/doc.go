// SPDX-License-Identifier: MIT
//
// Package compiler emits the row family appropriate to each widget's
// anchor connections, dimension behavior, ratio, bias and visibility,
// and inserts them into a tableau.System. Widgets the direct optimizer
// already fully resolved get no rows from this package; package layout
// pins their anchors to the resolved frame instead.
package compiler
