// Package cassowary is a two-dimensional constraint layout engine: an
// incremental Simplex solver paired with an Android-ConstraintLayout-
// style compiler, for hosts that need to resolve a widget tree's
// frames from anchor connections, bias, chains, ratios and guidelines
// rather than nested boxes.
//
// Under the hood, everything is organized under focused subpackages:
//
//	lattice/       — variable pool & sparse row store (component A)
//	tableau/       — the incremental Simplex core (component B)
//	rows/          — the twelve canonical constraint-row constructors (component C)
//	widget/        — the widget/anchor data model (component D)
//	compiler/      — translates widgets into solver rows (component E)
//	chain/         — chain detection and SPREAD/PACKED/SPREAD_INSIDE styling (component F)
//	direct/        — the no-solver fast path for simple anchor graphs (component G)
//	group/         — wrap-content parent sizing via connected components (component H)
//	layout/        — Container.Layout, the orchestration entry point
//	layoutbuilder/ — declarative constructors for common widget shapes
//	layoutlog/     — a nil-safe structured logging wrapper
//	cmd/cassowaryfmt/ — a CLI that solves a JSON layout description
//
// A minimal pass looks like:
//
//	arena := widget.NewArena()
//	child := arena.CreateWidget(arena.Root())
//	arena.Widget(child).SetDimensionBehavior(widget.Horizontal, widget.Fixed)
//	arena.Widget(child).Width = 100
//	container := layout.NewContainer(arena)
//	if err := container.Layout(context.Background()); err != nil {
//		// handle err
//	}
//	left, top, right, bottom, _ := arena.Widget(child).Frame()
//
// The solver core (lattice, tableau, rows) and the compiler (widget,
// compiler, chain, direct, group) are the sole subject of this
// module's correctness claims; content measurement, attribute
// parsing and animation are left to the host, reached only through
// layout.MeasureFunc.
package cassowary
