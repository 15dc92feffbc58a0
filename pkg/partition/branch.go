package partition

import (
	"fmt"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// BranchKind selects which slice of the family a branch extraction traces.
type BranchKind int

const (
	// BranchPaternal traces the full ancestral fan on the father's side:
	// the anchor's father plus every ancestor of the father through both
	// parents. The anchor is excluded.
	BranchPaternal BranchKind = iota
	// BranchMaternal is the mirror on the mother's side.
	BranchMaternal
	// BranchDescendant traces forward from a chosen child through all
	// children.
	BranchDescendant
	// BranchCustom traces upward from a specified target ancestor through
	// both parents.
	BranchCustom
)

// String returns the kind's name for labels and CLI flags.
func (k BranchKind) String() string {
	switch k {
	case BranchPaternal:
		return "paternal"
	case BranchMaternal:
		return "maternal"
	case BranchDescendant:
		return "descendants"
	case BranchCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseBranchKind converts a kind name back to a BranchKind.
func ParseBranchKind(s string) (BranchKind, bool) {
	switch s {
	case "paternal":
		return BranchPaternal, true
	case "maternal":
		return BranchMaternal, true
	case "descendants":
		return BranchDescendant, true
	case "custom":
		return BranchCustom, true
	}
	return BranchPaternal, false
}

// BranchOptions configures [Branch].
type BranchOptions struct {
	// Kind selects the traversal. Default: BranchPaternal.
	Kind BranchKind

	// AnchorID is the person the branch is computed relative to. Required.
	AnchorID string

	// TargetID is the chosen child (BranchDescendant) or the target
	// ancestor (BranchCustom). Ignored for the paternal/maternal kinds.
	TargetID string

	// MaxDepth bounds the walk; traverse.Unlimited (the default) disables
	// the bound.
	MaxDepth int

	// SkipSpouses disables the flat spouse merge. Spouses of every
	// included person are added by default, without recursing into their
	// families.
	SkipSpouses bool
}

// Branch extracts one side of the family relative to an anchor person.
//
// Paternal and maternal branches start at the anchor's father or mother and
// follow both parents of every visited ancestor, so they trace the full
// ancestral fan on that side rather than a single lineage. The anchor is
// excluded from the result. An anchor with no recorded parent on the chosen
// side yields an empty extraction, which is a result rather than an error.
//
// Descendant branches start at opts.TargetID and walk child links forward;
// the start child is included, so the anchor appears only when it is itself
// the chosen child. Custom branches walk upward from opts.TargetID through
// both parents, target included.
//
// Unless opts.SkipSpouses is set, spouses of every included person are
// merged in afterward as a flat addition. Boundary people are computed over
// the final set. Returns tree.ErrPersonNotFound when the anchor (or the
// required target) is absent from the tree.
func Branch(t *tree.Tree, opts BranchOptions) (Extraction, error) {
	if !t.Contains(opts.AnchorID) {
		return Extraction{}, tree.ErrPersonNotFound
	}

	label := fmt.Sprintf("%s branch of %s", capitalizeFirst(opts.Kind.String()), displayName(t, opts.AnchorID))
	anchor, _ := t.Person(opts.AnchorID)

	var start string
	var down bool
	switch opts.Kind {
	case BranchPaternal:
		start = anchor.FatherID
	case BranchMaternal:
		start = anchor.MotherID
	case BranchDescendant:
		start, down = opts.TargetID, true
	case BranchCustom:
		start = opts.TargetID
	}

	if start == "" || !t.Contains(start) {
		if opts.Kind == BranchDescendant || opts.Kind == BranchCustom {
			return Extraction{}, tree.ErrPersonNotFound
		}
		// Unknown parent on the chosen side: empty result.
		return Extraction{Label: label}, nil
	}

	include := map[string]bool{start: true}
	var reached []string
	if down {
		reached = traverse.Descendants(t, start, opts.MaxDepth)
	} else {
		reached = traverse.Ancestors(t, start, opts.MaxDepth)
	}
	for _, id := range reached {
		include[id] = true
	}

	if !opts.SkipSpouses {
		addSpouses(t, include)
	}
	return newExtraction(t, label, include), nil
}

// capitalizeFirst upper-cases the first byte of an ASCII label word.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
