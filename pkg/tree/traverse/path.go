package traverse

import (
	"slices"

	"github.com/matzehuels/kintree/pkg/tree"
)

// Path returns the shortest kinship path from fromID to toID, inclusive of
// both endpoints.
//
// Consecutive path members are connected by a parent/child link; spouse
// links are never followed, because spousal connection is a relationship of
// its own rather than a kinship step. The search is a breadth-first
// expansion to both parents and children of every visited person, with a
// parent-pointer per visited ID for reconstruction, so the first time the
// target is reached the path is minimal.
//
// Returns a single-element path when fromID == toID. Returns nil when either
// ID is unknown or the two people are in disconnected components - absence
// of a path is an answer, not an error.
func Path(t *tree.Tree, fromID, toID string) []string {
	if !t.Contains(fromID) || !t.Contains(toID) {
		return nil
	}
	if fromID == toID {
		return []string{fromID}
	}

	cameFrom := map[string]string{fromID: ""}
	queue := []string{fromID}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		neighbors := append(t.ParentsOf(curr), t.ChildrenOf(curr)...)
		for _, next := range neighbors {
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = curr
			if next == toID {
				return reconstruct(cameFrom, fromID, toID)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// reconstruct walks parent pointers back from toID to fromID and reverses.
func reconstruct(cameFrom map[string]string, fromID, toID string) []string {
	path := []string{toID}
	for curr := cameFrom[toID]; curr != ""; curr = cameFrom[curr] {
		path = append(path, curr)
	}
	slices.Reverse(path)
	return path
}
