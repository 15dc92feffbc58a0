// Package traverse implements the breadth-first traversal engine shared by
// kinship naming, partitioning, and layout.
//
// Every function here is a pure read over a [tree.Tree] and carries an
// explicit visited set, so malformed cyclic data (a person who is
// transitively their own ancestor) always terminates. This is a systemic
// rule, not a per-function fix: no traversal in this package may revisit an
// ID.
//
// [Generations] labels every person reachable from a root with a signed
// generation number; spouses share the generation of the person through whom
// they were discovered. [Path] finds the shortest kinship path between two
// people along parent/child edges only - spousal connection is a distinct
// relationship, never a kinship step. [Ancestors], [Descendants], and
// [Siblings] are the depth-limited walks the partitioners are built on.
package traverse
