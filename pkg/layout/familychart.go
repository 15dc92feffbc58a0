package layout

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// FamilyChart is the spouse-aware strategy: rows are processed from the
// oldest generation downward, children are ordered under their parents, and
// spouses are pulled adjacent to their partner. This is the default for
// trees below the size threshold.
type FamilyChart struct{}

// Name implements [Strategy].
func (FamilyChart) Name() string { return "family-chart" }

// Compute implements [Strategy].
func (FamilyChart) Compute(t *tree.Tree, opts Options) map[string]Position {
	gens := traverse.Generations(t, t.RootID(), opts.Direction)
	rows := rowsByGeneration(gens)

	// Walk generations parent-most first so each row can be ordered under
	// the already-placed row above it.
	order := slices.Sorted(maps.Keys(rows))
	if opts.Direction != traverse.Down {
		slices.Reverse(order)
	}

	positions := make(map[string]Position, len(gens))
	parentSlot := make(map[string]int)
	for _, gen := range order {
		ordered := orderRow(t, rows[gen], gens, gen, parentSlot)
		y := levelY(gen, opts)
		for i, id := range ordered {
			positions[id] = Position{X: float64(i) * hstep(opts), Y: y, Generation: gen}
			parentSlot[id] = i
		}
	}
	return positions
}

// orderRow sorts a generation row so children sit under their parents and
// spouses sit next to their partner. People with no placed parent keep row
// order by ID, after everyone anchored to the row above.
func orderRow(t *tree.Tree, row []string, gens map[string]int, gen int, parentSlot map[string]int) []string {
	type keyed struct {
		id       string
		anchored bool
		key      float64
	}
	keys := make([]keyed, 0, len(row))
	for _, id := range row {
		k := keyed{id: id}
		var sum, n float64
		for _, p := range t.ParentsOf(id) {
			if slot, ok := parentSlot[p]; ok {
				sum += float64(slot)
				n++
			}
		}
		if n > 0 {
			k.anchored, k.key = true, sum/n
		}
		keys = append(keys, k)
	}
	slices.SortStableFunc(keys, func(a, b keyed) int {
		switch {
		case a.anchored != b.anchored:
			if a.anchored {
				return -1
			}
			return 1
		case a.key != b.key:
			if a.key < b.key {
				return -1
			}
			return 1
		default:
			return strings.Compare(a.id, b.id)
		}
	})

	// Pull same-row spouses adjacent to their partner.
	inRow := make(map[string]bool, len(row))
	for _, id := range row {
		inRow[id] = true
	}
	placed := make(map[string]bool, len(row))
	out := make([]string, 0, len(row))
	for _, k := range keys {
		if placed[k.id] {
			continue
		}
		out = append(out, k.id)
		placed[k.id] = true
		for _, s := range t.SpousesOf(k.id) {
			if inRow[s] && !placed[s] && gens[s] == gen {
				out = append(out, s)
				placed[s] = true
			}
		}
	}
	return out
}
