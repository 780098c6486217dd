// SPDX-License-Identifier: MIT

package layoutbuilder

import "errors"

// ErrTooFewMembers is returned by a constructor asked to build a shape
// of fewer than its minimum member count (a chain or grid of zero
// widgets, a barrier with no members).
var ErrTooFewMembers = errors.New("layoutbuilder: too few members")

// ErrNoSuchParent is returned when the given parent id does not name a
// live widget in the arena.
var ErrNoSuchParent = errors.New("layoutbuilder: no such parent widget")
