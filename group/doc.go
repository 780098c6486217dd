// SPDX-License-Identifier: MIT
//
// Package group partitions a wrap-content parent's children into
// independent connected components, so each component's extent can be
// measured on its own before the parent's own size is known, instead
// of needing the full solver just to measure wrap-content. A partition
// that does not meet the eligibility rules collapses to a single
// component covering every child, which is always safe: the caller
// falls back to letting the full solver measure the parent.
package group
