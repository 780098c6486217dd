// SPDX-License-Identifier: MIT
//
// Package direct arithmetically resolves widgets whose geometry
// follows directly from already-known values — a fixed-size widget
// anchored to one already-placed neighbor, a centered pair between two
// already-placed targets, a MATCH_CONSTRAINT span stretched exactly
// between two already-placed targets, a MATCH_PARENT widget whose
// parent's span has already resolved — without going through the
// solver at all. Anything it cannot resolve (an unresolvable cycle, a
// connection to a target this pass does not track, an inverted
// MATCH_CONSTRAINT span, a chain member) is simply left for the solver
// to handle, which is always correct since direct resolution is an
// optimization, never a requirement.
package direct
