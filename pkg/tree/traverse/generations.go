package traverse

import "github.com/matzehuels/kintree/pkg/tree"

// Direction controls the sign of generation numbers.
type Direction int

const (
	// Up numbers ancestors with increasing positive generations and
	// descendants with negative ones. This is the default.
	Up Direction = iota
	// Down is the mirror image: ancestors negative, descendants positive.
	Down
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// ParseDirection converts "up" or "down" into a Direction.
// Unrecognized values report false.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up", "":
		return Up, true
	case "down":
		return Down, true
	}
	return Up, false
}

// genEntry is one pending BFS queue item for Generations.
type genEntry struct {
	id  string
	gen int
}

// Generations labels every person reachable from rootID with a signed
// generation number relative to the root.
//
// The root is generation 0. Parents of a visited person are enqueued at
// generation ±1 and children at generation ∓1, with the sign fixed by dir;
// spouses are enqueued at the same generation as the person through whom
// they were discovered. BFS order means the first generation assigned to a
// person is the one along a shortest path, and the global visited set keeps
// cyclic data from looping.
//
// People with no path to the root are absent from the result. Callers must
// treat a missing key as "no generation", which is distinct from generation
// 0. An unknown rootID yields an empty map.
func Generations(t *tree.Tree, rootID string, dir Direction) map[string]int {
	result := make(map[string]int)
	if !t.Contains(rootID) {
		return result
	}

	parentStep := 1
	if dir == Down {
		parentStep = -1
	}

	visited := map[string]bool{rootID: true}
	queue := []genEntry{{id: rootID, gen: 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		result[curr.id] = curr.gen

		enqueue := func(id string, gen int) {
			if !visited[id] {
				visited[id] = true
				queue = append(queue, genEntry{id: id, gen: gen})
			}
		}

		for _, p := range t.ParentsOf(curr.id) {
			enqueue(p, curr.gen+parentStep)
		}
		for _, c := range t.ChildrenOf(curr.id) {
			enqueue(c, curr.gen-parentStep)
		}
		for _, s := range t.SpousesOf(curr.id) {
			enqueue(s, curr.gen)
		}
	}
	return result
}
