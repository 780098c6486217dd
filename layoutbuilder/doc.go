// SPDX-License-Identifier: MIT
//
// Package layoutbuilder offers declarative constructors for common
// widget shapes — chains, grids, guideline/barrier placement — so a
// host assembling a layout by hand doesn't have to hand-wire every
// anchor connection. Each constructor is a closure capturing its own
// parameters, applied against an arena and a parent id exactly the way
// a host would build the tree one widget at a time; nothing here is
// reachable except through widget.Arena's own public API.
package layoutbuilder
