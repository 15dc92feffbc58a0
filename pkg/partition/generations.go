package partition

import (
	"fmt"
	"slices"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// DefaultSpan is the number of generations per range when the caller
// supplies none.
const DefaultSpan = 4

// GenerationRange is an inclusive band of generation numbers.
type GenerationRange struct {
	From int // Lowest generation in the range
	To   int // Highest generation in the range
}

// contains reports whether gen falls inside the inclusive range.
func (r GenerationRange) contains(gen int) bool {
	return gen >= r.From && gen <= r.To
}

// onEdge reports whether gen sits at the range's boundary value.
func (r GenerationRange) onEdge(gen int) bool {
	return gen == r.From || gen == r.To
}

// RangeOptions configures [ByGenerationRange].
type RangeOptions struct {
	// Direction controls generation signs. Default: traverse.Up.
	Direction traverse.Direction

	// Span is the window size for auto-computed ranges. Default: DefaultSpan.
	Span int

	// Ranges overrides the automatic windows entirely when non-empty.
	Ranges []GenerationRange
}

// RangeExtraction is one generation band's worth of people.
type RangeExtraction struct {
	Extraction
	Range GenerationRange
}

// ByGenerationRange assigns generations from rootID and buckets every
// reachable person into contiguous generation ranges.
//
// When opts.Ranges is empty, fixed-size windows of opts.Span generations are
// computed covering the lowest to highest assigned generation. People with
// no path to the root have no generation and appear in no range.
//
// A person is a boundary person for their range when their generation sits
// at the range's edge and a directly connected parent or child has a
// generation in a different range; those cross-range links are what the
// caller turns into navigation links between canvases. Note that this is a
// narrower rule than the other partitioners' boundary computation, so the
// boundary list here is built range-by-range rather than via the shared
// helper.
//
// Ranges that end up empty are omitted. Returns tree.ErrPersonNotFound when
// rootID is absent.
func ByGenerationRange(t *tree.Tree, rootID string, opts RangeOptions) ([]RangeExtraction, error) {
	if !t.Contains(rootID) {
		return nil, tree.ErrPersonNotFound
	}
	if opts.Span <= 0 {
		opts.Span = DefaultSpan
	}

	gens := traverse.Generations(t, rootID, opts.Direction)
	if len(gens) == 0 {
		return nil, nil
	}

	ranges := opts.Ranges
	if len(ranges) == 0 {
		ranges = autoRanges(gens, opts.Span)
	}

	var out []RangeExtraction
	for _, r := range ranges {
		include := make(map[string]bool)
		for id, g := range gens {
			if r.contains(g) {
				include[id] = true
			}
		}
		if len(include) == 0 {
			continue
		}

		ext := RangeExtraction{
			Extraction: Extraction{
				Label: fmt.Sprintf("Generations %d to %d", r.From, r.To),
				IDs:   sortedKeys(include),
			},
			Range: r,
		}
		ext.Boundary = rangeBoundary(t, gens, r, include)
		out = append(out, ext)
	}
	return out, nil
}

// autoRanges covers the assigned generation span with fixed-size windows,
// anchored at the lowest generation present.
func autoRanges(gens map[string]int, span int) []GenerationRange {
	lo, hi := genBounds(gens)
	var ranges []GenerationRange
	for from := lo; from <= hi; from += span {
		ranges = append(ranges, GenerationRange{From: from, To: from + span - 1})
	}
	return ranges
}

// genBounds returns the lowest and highest assigned generation.
func genBounds(gens map[string]int) (lo, hi int) {
	first := true
	for _, g := range gens {
		if first {
			lo, hi = g, g
			first = false
			continue
		}
		lo = min(lo, g)
		hi = max(hi, g)
	}
	return lo, hi
}

// rangeBoundary finds edge-generation people with a parent or child in a
// different range.
func rangeBoundary(t *tree.Tree, gens map[string]int, r GenerationRange, include map[string]bool) []BoundaryPerson {
	var out []BoundaryPerson
	for _, id := range sortedKeys(include) {
		if !r.onEdge(gens[id]) {
			continue
		}
		var conns []Connection
		p, _ := t.Person(id)
		if fg, ok := gens[p.FatherID]; ok && p.FatherID != "" && !r.contains(fg) {
			conns = append(conns, ConnectionPaternal)
		}
		if mg, ok := gens[p.MotherID]; ok && p.MotherID != "" && !r.contains(mg) {
			conns = append(conns, ConnectionMaternal)
		}
		for _, c := range t.ChildrenOf(id) {
			if cg, ok := gens[c]; ok && !r.contains(cg) {
				conns = append(conns, ConnectionDescendants)
				break
			}
		}
		if len(conns) > 0 {
			out = append(out, BoundaryPerson{ID: id, Connections: conns})
		}
	}
	return out
}

// sortedKeys returns the set members in sorted order.
func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
