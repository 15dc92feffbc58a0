package layout

import (
	"slices"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// Hierarchical is the plain generation-row strategy: every person reachable
// from the root is placed on their generation's row, ordered by ID. It does
// no spouse pairing, which makes it cheap enough for large trees.
type Hierarchical struct{}

// Name implements [Strategy].
func (Hierarchical) Name() string { return "hierarchical" }

// Compute implements [Strategy].
func (Hierarchical) Compute(t *tree.Tree, opts Options) map[string]Position {
	gens := traverse.Generations(t, t.RootID(), opts.Direction)
	positions := make(map[string]Position, len(gens))
	for gen, row := range rowsByGeneration(gens) {
		y := levelY(gen, opts)
		for i, id := range row {
			positions[id] = Position{X: float64(i) * hstep(opts), Y: y, Generation: gen}
		}
	}
	return positions
}

// rowsByGeneration buckets assigned IDs per generation, each row sorted for
// deterministic output.
func rowsByGeneration(gens map[string]int) map[int][]string {
	rows := make(map[int][]string)
	for id, g := range gens {
		rows[g] = append(rows[g], id)
	}
	for g := range rows {
		slices.Sort(rows[g])
	}
	return rows
}
