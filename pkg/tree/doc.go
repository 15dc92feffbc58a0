// Package tree provides the family graph model consumed by every other
// kintree package.
//
// # Overview
//
// A [Tree] is a snapshot of a person graph: a root plus an ID-keyed map of
// [Person] records. People link to each other through per-person fields
// (father, mother, ordered spouses, children); these fields are the single
// source of truth, and the denormalized [Edge] list is derived from them on
// demand by [Tree.Edges] rather than stored alongside and allowed to drift.
//
// # Basic Usage
//
// Create a tree with [New], add people with [Tree.AddPerson], and pick the
// root with [Tree.SetRoot]:
//
//	t := tree.New()
//	t.AddPerson(&tree.Person{ID: "ada", FatherID: "byron"})
//	t.AddPerson(&tree.Person{ID: "byron"})
//	t.SetRoot("ada")
//
// Query structure with [Tree.ParentsOf], [Tree.ChildrenOf], and
// [Tree.SpousesOf]; all three skip references to people the tree does not
// contain.
//
// # Malformed data
//
// Source archives contain dangling links, asymmetric spouse claims, and the
// occasional person who is transitively their own ancestor. Nothing here
// validates genealogical plausibility: accessors filter dangling references
// and every traversal over a Tree carries a visited set so cyclic data
// terminates.
//
// # Derived trees
//
// [Tree.Subset] produces a smaller, self-consistent tree from a set of IDs,
// cloning each retained person and dropping links that point outside the
// subset. [Tree.FindBestRoot] picks a replacement root for such a subset
// using an explicit scoring heuristic.
//
// # Concurrency
//
// A Tree is never mutated after construction by the traversal, partition,
// and layout packages, so independent computations over the same Tree may
// run concurrently. Construction itself is not synchronized.
package tree
