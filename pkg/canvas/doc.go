// Package canvas serializes family trees and computed layouts.
//
// Two JSON formats live here: [TreeFile], the canonical person-record
// format read and written by the CLI, and [Canvas], the positioned output
// built from a layout via [FromLayout], where every element carries a fresh
// UUID as the canvas format requires.
//
// The package also exports trees as Graphviz DOT ([ToDOT]) and renders DOT
// to SVG ([RenderSVG]).
//
// Everything here is an adapter around the core packages: the tree,
// partition, and layout packages never see these formats.
package canvas
