// Package partition selects coherent sub-sets of a family tree for
// rendering as separate, cross-linked canvases.
//
// # Strategies
//
// Five independent strategies are provided, each a pure function from a
// [tree.Tree] plus an options struct to ID sets with descriptive metadata:
//
//   - [ByGenerationRange]: contiguous generation bands of a fixed span
//   - [Branch]: the paternal/maternal ancestral fan, a descendant line, or
//     the fan above a custom ancestor
//   - [ByCollection]: grouping by user-assigned collection tags, with three
//     policies for people belonging to more than one
//   - [Lineage]: the direct kinship path between two people
//   - [AncestorDescendant]: the two halves of an hourglass around a root
//
// Nothing here writes files: every strategy returns [Extraction] values
// (or close relatives of it) describing who is in the partition and which
// included people - the boundary people - have direct relatives outside it.
// Callers build sub-trees from the ID sets with [tree.Tree.Subset] and pick
// roots with [tree.Tree.FindBestRoot].
//
// # Error model
//
// A missing anchor or root is tree.ErrPersonNotFound; disconnected lineage
// anchors are [ErrNoPath]; everything else degrades to an empty extraction
// that callers should skip, not fail on.
package partition
