// SPDX-License-Identifier: MIT
//
// Package chain detects bidirectionally-linked widget sequences and
// emits the style-specific rows (PACKED/SPREAD/SPREAD_INSIDE, weighted
// MATCH_CONSTRAINT distribution) spec.md §4.5 describes. Basic
// adjacency between chain members is already installed by whatever
// widget.Connect calls wired the chain in the first place and is
// compiled by the ordinary per-widget endpoint rows in package
// compiler; this package only adds the group-level behavior a plain
// endpoint connection cannot express on its own.
package chain
