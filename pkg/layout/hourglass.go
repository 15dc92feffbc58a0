package layout

import (
	"slices"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// Hourglass places only the root's direct line: the ancestor fan in rows
// above the root and the descendant fan in rows below it, meeting at the
// root. Collateral relatives (uncles, cousins) are left to the fallback
// chain.
type Hourglass struct{}

// Name implements [Strategy].
func (Hourglass) Name() string { return "hourglass" }

// Compute implements [Strategy].
func (Hourglass) Compute(t *tree.Tree, opts Options) map[string]Position {
	root := t.RootID()
	positions := map[string]Position{root: {Generation: 0}}

	place := func(rows map[int][]string, up bool) {
		for depth, row := range rows {
			slices.Sort(row)
			gen := depth
			if up == (opts.Direction == traverse.Down) {
				gen = -depth
			}
			y := float64(depth) * (opts.NodeHeight + opts.Gap)
			if up {
				y = -y
			}
			for i, id := range row {
				positions[id] = Position{X: float64(i) * hstep(opts), Y: y, Generation: gen}
			}
		}
	}
	place(depthRows(t, root, t.ParentsOf), true)
	place(depthRows(t, root, t.ChildrenOf), false)
	return positions
}

// depthRows walks from the root via next, bucketing visited people by their
// BFS depth. The root itself is not included.
func depthRows(t *tree.Tree, root string, next func(string) []string) map[int][]string {
	rows := make(map[int][]string)
	visited := map[string]bool{root: true}
	type entry struct {
		id    string
		depth int
	}
	queue := []entry{{root, 0}}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, n := range next(curr.id) {
			if visited[n] {
				continue
			}
			visited[n] = true
			rows[curr.depth+1] = append(rows[curr.depth+1], n)
			queue = append(queue, entry{n, curr.depth + 1})
		}
	}
	return rows
}
