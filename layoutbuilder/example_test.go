// SPDX-License-Identifier: MIT

package layoutbuilder_test

import (
	"fmt"

	"github.com/katalvlaran/cassowary/layoutbuilder"
	"github.com/katalvlaran/cassowary/widget"
)

// ExampleBuild composes a horizontal chain and a centering guideline
// under the same parent in one call.
func ExampleBuild() {
	arena := widget.NewArena()
	root := arena.Root()

	ids, err := layoutbuilder.Build(arena, root,
		layoutbuilder.HorizontalChain(3, 50, widget.Packed),
		layoutbuilder.PercentGuideline(widget.Vertical, 0.5),
	)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	fmt.Println("widgets created:", len(ids))
	fmt.Println("last widget is a guideline:", arena.Widget(ids[len(ids)-1]).IsHelper())

	// Output:
	// widgets created: 4
	// last widget is a guideline: true
}
