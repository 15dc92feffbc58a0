package layout

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// yearUnknown sorts people without a parseable birth year after everyone
// else.
const yearUnknown = 1 << 30

// Timeline orders everyone reachable from the root left to right by birth
// year, keeping the generation rows vertically. People without a parseable
// birth date come last, in ID order.
type Timeline struct{}

// Name implements [Strategy].
func (Timeline) Name() string { return "timeline" }

// Compute implements [Strategy].
func (Timeline) Compute(t *tree.Tree, opts Options) map[string]Position {
	gens := traverse.Generations(t, t.RootID(), opts.Direction)

	ids := make([]string, 0, len(gens))
	for id := range gens {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		ya, yb := birthYear(t, a), birthYear(t, b)
		if ya != yb {
			return ya - yb
		}
		return strings.Compare(a, b)
	})

	positions := make(map[string]Position, len(ids))
	for i, id := range ids {
		gen := gens[id]
		positions[id] = Position{X: float64(i) * hstep(opts), Y: levelY(gen, opts), Generation: gen}
	}
	return positions
}

// birthYear extracts the first four-digit run from the person's free-form
// birth date, or yearUnknown when there is none.
func birthYear(t *tree.Tree, id string) int {
	p, ok := t.Person(id)
	if !ok {
		return yearUnknown
	}
	digits := 0
	for i, r := range p.BirthDate {
		if r >= '0' && r <= '9' {
			digits++
			if digits == 4 {
				y, err := strconv.Atoi(p.BirthDate[i-3 : i+1])
				if err != nil {
					return yearUnknown
				}
				return y
			}
			continue
		}
		digits = 0
	}
	return yearUnknown
}
