package layout

import (
	"slices"
	"strings"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// EnforceSpacing pushes overlapping nodes apart within each generation row.
// Rows are grouped by y-coordinate and sorted by x; walking left to right,
// each node's x is forced to at least the previous node's adjusted x plus
// NodeWidth + Gap. Upstream strategies do not reliably respect spacing once
// spouse and in-law nodes are injected, so this runs after every strategy.
//
// The input map is not mutated.
func EnforceSpacing(positions map[string]Position, opts Options) map[string]Position {
	opts.SetDefaults()
	out := make(map[string]Position, len(positions))
	for _, row := range rowsByY(positions) {
		minX := 0.0
		for i, id := range row {
			p := positions[id]
			if i > 0 && p.X < minX {
				p.X = minX
			}
			minX = p.X + opts.NodeWidth + opts.Gap
			out[id] = p
		}
	}
	return out
}

// RegroupSiblings reorders each generation row so full siblings end up
// contiguous.
//
// Within a row, a person is a blood relative when at least one of their
// parents is present in the tree, and an in-law otherwise (they married into
// the family). Blood relatives are grouped by their exact parent pair,
// order-independent, so full siblings share a group; in-laws and rootless
// ancestors each form their own group, keeping their original relative
// order. Groups are interleaved left to right by each group's original
// leftmost x, and the merged sequence is re-assigned evenly spaced x
// coordinates starting from the row's original leftmost x.
//
// The input map is not mutated.
func RegroupSiblings(t *tree.Tree, positions map[string]Position, opts Options) map[string]Position {
	opts.SetDefaults()
	out := make(map[string]Position, len(positions))
	for _, row := range rowsByY(positions) {
		groups := make(map[string][]string)
		var order []string // group keys by first appearance, i.e. by x
		for _, id := range row {
			key := parentPairKey(t, id)
			if key == "" {
				// In-laws stay solo, in original relative order.
				key = "solo:" + id
			}
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], id)
		}

		// order is already sorted by each group's leftmost original x,
		// because rows come sorted by x and keys are recorded on first
		// appearance.
		startX := positions[row[0]].X
		i := 0
		for _, key := range order {
			for _, id := range groups[key] {
				p := positions[id]
				p.X = startX + float64(i)*(opts.NodeWidth+opts.Gap)
				out[id] = p
				i++
			}
		}
	}
	return out
}

// parentPairKey identifies a person's parent pair, order-independent.
// Returns "" when neither parent is present in the tree.
func parentPairKey(t *tree.Tree, id string) string {
	parents := t.ParentsOf(id)
	if len(parents) == 0 {
		return ""
	}
	slices.Sort(parents)
	return strings.Join(parents, "|")
}

// placeOmitted runs the fallback placement chain for every person the
// strategy left out: next to a positioned spouse, else above a positioned
// child, else next to a positioned sibling, else below a positioned parent.
// Placing one person can unlock another, so the chain repeats until a full
// pass places nobody. Returns the IDs that remain unplaceable.
func placeOmitted(t *tree.Tree, positions map[string]Position, opts Options) []string {
	var missing []string
	for _, id := range t.IDs() {
		if _, ok := positions[id]; !ok {
			missing = append(missing, id)
		}
	}

	for len(missing) > 0 {
		var still []string
		for _, id := range missing {
			if p, ok := fallbackPosition(t, id, positions, opts); ok {
				positions[id] = p
			} else {
				still = append(still, id)
			}
		}
		if len(still) == len(missing) {
			return still
		}
		missing = still
	}
	return nil
}

// fallbackPosition tries the anchor chain for one person, in priority
// order.
func fallbackPosition(t *tree.Tree, id string, positions map[string]Position, opts Options) (Position, bool) {
	vstep := opts.NodeHeight + opts.Gap
	genUp := 1
	if opts.Direction == traverse.Down {
		genUp = -1
	}

	for _, s := range t.SpousesOf(id) {
		if p, ok := positions[s]; ok {
			return Position{X: p.X + hstep(opts), Y: p.Y, Generation: p.Generation}, true
		}
	}
	for _, c := range t.ChildrenOf(id) {
		if p, ok := positions[c]; ok {
			return Position{X: p.X, Y: p.Y - vstep, Generation: p.Generation + genUp}, true
		}
	}
	for _, s := range traverse.Siblings(t, id) {
		if p, ok := positions[s]; ok {
			return Position{X: p.X + hstep(opts), Y: p.Y, Generation: p.Generation}, true
		}
	}
	for _, par := range t.ParentsOf(id) {
		if p, ok := positions[par]; ok {
			return Position{X: p.X, Y: p.Y + vstep, Generation: p.Generation - genUp}, true
		}
	}
	return Position{}, false
}

// rowsByY buckets positioned IDs by y-coordinate, each row sorted by x with
// ID as the tie-break.
func rowsByY(positions map[string]Position) [][]string {
	byY := make(map[float64][]string)
	for id := range positions {
		y := positions[id].Y
		byY[y] = append(byY[y], id)
	}

	ys := make([]float64, 0, len(byY))
	for y := range byY {
		ys = append(ys, y)
	}
	slices.Sort(ys)

	rows := make([][]string, 0, len(ys))
	for _, y := range ys {
		row := byY[y]
		slices.SortFunc(row, func(a, b string) int {
			pa, pb := positions[a], positions[b]
			if pa.X != pb.X {
				if pa.X < pb.X {
					return -1
				}
				return 1
			}
			return strings.Compare(a, b)
		})
		rows = append(rows, row)
	}
	return rows
}
