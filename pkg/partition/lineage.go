package partition

import (
	"fmt"

	"github.com/matzehuels/kintree/pkg/kinship"
	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// LineageOptions configures [Lineage].
type LineageOptions struct {
	// IncludeSiblings adds every path member's siblings (people sharing at
	// least one parent). Default: false.
	IncludeSiblings bool

	// SkipSpouses disables adding each path member's spouses. Spouses are
	// added by default.
	SkipSpouses bool
}

// LineageExtraction is the direct kinship line between two people, with the
// english relationship label attached.
type LineageExtraction struct {
	Extraction

	// Path is the shortest kinship path from the first anchor to the
	// second, inclusive.
	Path []string

	// Relationship names what the second anchor is to the first.
	Relationship string
}

// Lineage extracts the shortest kinship path between two anchors, optionally
// widened with each path member's spouses and siblings.
//
// Spouses and siblings are flat additions: their own families are not
// followed. Returns tree.ErrPersonNotFound when either anchor is absent and
// ErrNoPath when the anchors are in disconnected components.
func Lineage(t *tree.Tree, fromID, toID string, opts LineageOptions) (LineageExtraction, error) {
	if !t.Contains(fromID) || !t.Contains(toID) {
		return LineageExtraction{}, tree.ErrPersonNotFound
	}

	path := traverse.Path(t, fromID, toID)
	if path == nil {
		return LineageExtraction{}, ErrNoPath
	}

	include := make(map[string]bool, len(path))
	for _, id := range path {
		include[id] = true
	}
	if opts.IncludeSiblings {
		for _, id := range path {
			for _, s := range traverse.Siblings(t, id) {
				include[s] = true
			}
		}
	}
	if !opts.SkipSpouses {
		for _, id := range path {
			for _, s := range t.SpousesOf(id) {
				include[s] = true
			}
		}
	}

	label := fmt.Sprintf("Lineage from %s to %s", displayName(t, fromID), displayName(t, toID))
	return LineageExtraction{
		Extraction:   newExtraction(t, label, include),
		Path:         path,
		Relationship: kinship.Describe(t, path),
	}, nil
}
