// Package pkg provides the core libraries for Kintree family tree
// visualization.
//
// # Overview
//
// Kintree turns genealogical data into navigable canvases: trees too large
// for one view are split into linked sub-trees, and every sub-tree is laid
// out on an infinite canvas. The pkg directory is organized into five main
// areas:
//
//  1. [tree] - Domain model (people, parent/spouse links, traversal)
//  2. [kinship] - Relationship paths and english relationship names
//  3. [partition] - Splitting strategies producing linkable sub-trees
//  4. [layout] - Canvas positioning strategies and post-processing
//  5. [canvas] - Serialization (tree files, canvases, DOT/SVG export)
//
// # Architecture
//
// The typical data flow through Kintree:
//
//	GEDCOM file or tree.json
//	         ↓
//	    [tree] package (graph model + generation assignment)
//	         ↓
//	    [partition] package (generation ranges, branches, lineages)
//	         ↓
//	    [layout] package (positions + spacing/sibling post-processing)
//	         ↓
//	    [canvas] package (canvas.json, DOT, SVG)
//
// # Quick Start
//
// Load a tree, lay it out, and export SVG:
//
//	import (
//	    "github.com/matzehuels/kintree/pkg/canvas"
//	    "github.com/matzehuels/kintree/pkg/layout"
//	)
//
//	// 1. Load the tree
//	t, _ := canvas.ReadTreeFile("family.tree.json")
//
//	// 2. Compute positions
//	opts := layout.Options{}
//	opts.SetDefaults()
//	result, _ := layout.Compute(t, layout.ForTree(t, opts), opts)
//
//	// 3. Export
//	svg, _ := canvas.RenderSVG(canvas.ToDOT(t, result, canvas.DOTOptions{}))
//
// # Main Packages
//
// [tree] - The family graph: people with parent, spouse, and custom links,
// cycle-safe BFS traversal, generation assignment relative to a root, and
// subset extraction with best-root selection.
//
// [kinship] - Shortest kinship paths (parent/child edges only, never
// spousal) and english relationship naming ("Great-grandfather", "First
// cousin once removed").
//
// [partition] - Five splitting strategies: generation ranges, family
// branches, collection tags, direct lineages, and ancestor/descendant
// hourglasses. Every strategy reports boundary people so cross-partition
// navigation links can be drawn.
//
// [layout] - Canvas positioning: hierarchical, family-chart, timeline, and
// hourglass strategies, plus post-processing that places omitted people
// near relatives, regroups siblings, and enforces minimum spacing.
//
// [canvas] - File formats: tree.json (people and links), canvas.json
// (positioned nodes and edges), and Graphviz DOT/SVG export.
//
// [gedcom] - Minimal GEDCOM importer covering individuals, families, and
// birth/death dates.
//
// [cache] - Layout result caching with file-backed and null
// implementations.
//
// [errors] - Coded errors with user-facing messages for the CLI layer.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/partition/...  # Specific package
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/kintree/pkg/tree
// [kinship]: https://pkg.go.dev/github.com/matzehuels/kintree/pkg/kinship
// [partition]: https://pkg.go.dev/github.com/matzehuels/kintree/pkg/partition
// [layout]: https://pkg.go.dev/github.com/matzehuels/kintree/pkg/layout
// [canvas]: https://pkg.go.dev/github.com/matzehuels/kintree/pkg/canvas
// [gedcom]: https://pkg.go.dev/github.com/matzehuels/kintree/pkg/gedcom
// [cache]: https://pkg.go.dev/github.com/matzehuels/kintree/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/kintree/pkg/errors
package pkg
