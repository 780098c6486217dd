// SPDX-License-Identifier: MIT
package widget

import "errors"

var (
	// ErrIncompatibleAnchors is returned by Connect when from and to do
	// not belong to the same compatibility group (spec invariant i).
	// Callers that don't care may discard it; the connection is simply
	// not installed.
	ErrIncompatibleAnchors = errors.New("widget: incompatible anchor types")

	// ErrUnknownWidget is returned when an id does not name a live widget
	// in the arena (never created, or created in a different arena).
	ErrUnknownWidget = errors.New("widget: unknown widget id")
)
