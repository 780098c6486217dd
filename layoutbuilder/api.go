// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: the Constructor type every shape in this package implements,
// and Build, the single orchestrator that runs a sequence of them
// against one arena.

package layoutbuilder

import (
	"fmt"

	"github.com/katalvlaran/cassowary/widget"
)

// Constructor builds one shape's widgets under parent and returns their
// ids in the shape's own canonical order.
type Constructor func(arena *widget.Arena, parent widget.ID) ([]widget.ID, error)

// Build runs each constructor against arena in order, under parent,
// and returns the concatenation of their id slices in call order. A
// constructor error is wrapped with its index and returned immediately;
// no partial cleanup is attempted — the caller's arena is the only
// state and widgets already created stay created.
func Build(arena *widget.Arena, parent widget.ID, cons ...Constructor) ([]widget.ID, error) {
	var all []widget.ID
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("layoutbuilder.Build: nil constructor at index %d", i)
		}
		ids, err := fn(arena, parent)
		if err != nil {
			return nil, fmt.Errorf("layoutbuilder.Build: constructor %d: %w", i, err)
		}
		all = append(all, ids...)
	}
	return all, nil
}
