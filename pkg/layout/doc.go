// Package layout assigns 2-D coordinates to the people of a family tree.
//
// # Strategies
//
// Four interchangeable [Strategy] implementations produce an initial
// placement: [Hierarchical] (plain generation rows), [FamilyChart]
// (spouse-aware, the default for small trees), [Timeline] (birth-year
// ordered) and [Hourglass] (ancestors above, descendants below). [ForTree]
// picks between the first two by tree size.
//
// # Post-processing
//
// [Compute] wraps any strategy with three cross-cutting passes: a fallback
// placement chain for people the strategy omitted (anchored to a spouse,
// child, sibling or parent, in that order), sibling regrouping so full
// siblings end up contiguous within their generation row, and
// minimum-spacing enforcement so no two nodes in a row overlap. People that
// cannot be anchored at all are reported in [Result].Unplaced rather than
// silently dropped.
//
// # Coordinates
//
// Positions are in user units with y growing downward: ancestors sit above
// the root at negative y, regardless of the generation numbering direction.
// All functions are pure: input trees and position maps are never mutated.
package layout
