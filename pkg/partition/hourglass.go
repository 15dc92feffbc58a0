package partition

import (
	"fmt"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// HourglassOptions configures [AncestorDescendant].
type HourglassOptions struct {
	// AncestorDepth bounds the upward walk; traverse.Unlimited disables it.
	AncestorDepth int

	// DescendantDepth bounds the downward walk; traverse.Unlimited
	// disables it.
	DescendantDepth int

	// SkipSpouses disables merging spouses of every visited person into
	// each subset. Spouses are included by default.
	SkipSpouses bool
}

// PairExtraction is the result of [AncestorDescendant]: two independently
// extracted subsets that both contain the root.
type PairExtraction struct {
	// Ancestors is the root plus everyone above it within AncestorDepth.
	Ancestors Extraction

	// Descendants is the root plus everyone below it within
	// DescendantDepth.
	Descendants Extraction

	// Total is the number of unique people across both subsets.
	Total int
}

// AncestorDescendant independently extracts the ancestor and descendant
// sides of a root person: the ancestral fan up to opts.AncestorDepth and the
// descendant fan down to opts.DescendantDepth, each via plain BFS. The root
// belongs to both subsets, so they can be laid out as the two halves of an
// hourglass that meet at the root.
//
// Returns tree.ErrPersonNotFound when rootID is absent.
func AncestorDescendant(t *tree.Tree, rootID string, opts HourglassOptions) (PairExtraction, error) {
	if !t.Contains(rootID) {
		return PairExtraction{}, tree.ErrPersonNotFound
	}

	name := displayName(t, rootID)

	up := map[string]bool{rootID: true}
	for _, id := range traverse.Ancestors(t, rootID, opts.AncestorDepth) {
		up[id] = true
	}
	down := map[string]bool{rootID: true}
	for _, id := range traverse.Descendants(t, rootID, opts.DescendantDepth) {
		down[id] = true
	}

	if !opts.SkipSpouses {
		addSpouses(t, up)
		addSpouses(t, down)
	}

	union := make(map[string]bool, len(up)+len(down))
	for id := range up {
		union[id] = true
	}
	for id := range down {
		union[id] = true
	}

	return PairExtraction{
		Ancestors:   newExtraction(t, fmt.Sprintf("Ancestors of %s", name), up),
		Descendants: newExtraction(t, fmt.Sprintf("Descendants of %s", name), down),
		Total:       len(union),
	}, nil
}
