package traverse

import (
	"slices"

	"github.com/matzehuels/kintree/pkg/tree"
)

// Unlimited disables the depth limit on the walks below. Any depth <= 0 is
// treated the same way.
const Unlimited = 0

// Ancestors returns every ancestor of id reachable through both parents,
// breadth-first, within maxDepth steps (Unlimited for no bound). The person
// itself is not included. Order is BFS discovery order, so nearer ancestors
// come first.
//
// Cycle-safe: an ancestor reachable twice (pedigree collapse, or malformed
// loops) appears once.
func Ancestors(t *tree.Tree, id string, maxDepth int) []string {
	return walk(t, id, maxDepth, t.ParentsOf)
}

// Descendants returns every descendant of id reachable through child links,
// breadth-first, within maxDepth steps (Unlimited for no bound). The person
// itself is not included.
func Descendants(t *tree.Tree, id string, maxDepth int) []string {
	return walk(t, id, maxDepth, t.ChildrenOf)
}

// walkEntry pairs an ID with its distance from the start.
type walkEntry struct {
	id    string
	depth int
}

// walk is the shared BFS over a single expansion function.
func walk(t *tree.Tree, id string, maxDepth int, next func(string) []string) []string {
	if !t.Contains(id) {
		return nil
	}

	var out []string
	visited := map[string]bool{id: true}
	queue := []walkEntry{{id: id, depth: 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if maxDepth > 0 && curr.depth == maxDepth {
			continue
		}
		for _, n := range next(curr.id) {
			if visited[n] {
				continue
			}
			visited[n] = true
			out = append(out, n)
			queue = append(queue, walkEntry{id: n, depth: curr.depth + 1})
		}
	}
	return out
}

// Siblings returns every other person sharing at least one known parent with
// id, in sorted order. Half-siblings count; spouses' children from other
// marriages do not unless a parent is actually shared.
func Siblings(t *tree.Tree, id string) []string {
	p, ok := t.Person(id)
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	for _, other := range t.People() {
		if other.ID == id {
			continue
		}
		if sharesParent(p, other) {
			seen[other.ID] = true
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// sharesParent reports whether a and b record at least one common parent.
func sharesParent(a, b *tree.Person) bool {
	if a.FatherID != "" && (a.FatherID == b.FatherID || a.FatherID == b.MotherID) {
		return true
	}
	if a.MotherID != "" && (a.MotherID == b.FatherID || a.MotherID == b.MotherID) {
		return true
	}
	return false
}
