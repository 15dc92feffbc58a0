package partition

import (
	"maps"
	"slices"

	"github.com/matzehuels/kintree/pkg/tree"
)

// Group names reserved for people outside any user collection.
const (
	// UncollectedGroup holds people carrying no collection tag.
	UncollectedGroup = "Uncollected"
	// BridgeGroup holds bridge people under BridgeSeparate handling.
	BridgeGroup = "Bridge people"
)

// BridgeHandling decides where a bridge person (someone tagged with two or
// more collections) ends up.
type BridgeHandling int

const (
	// BridgeDuplicate places the person in every collection they belong
	// to. This is the default.
	BridgeDuplicate BridgeHandling = iota
	// BridgePrimaryOnly places the person only in their primary
	// collection: the first match in CollectionOptions.PriorityOrder, or
	// the alphabetically first tag when no order is supplied.
	BridgePrimaryOnly
	// BridgeSeparate removes bridge people from all home collections and
	// gathers them in their own group for a separate canvas.
	BridgeSeparate
)

// ParseBridgeHandling converts "duplicate", "primary-only", or
// "separate-canvas" to a BridgeHandling.
func ParseBridgeHandling(s string) (BridgeHandling, bool) {
	switch s {
	case "duplicate", "":
		return BridgeDuplicate, true
	case "primary-only":
		return BridgePrimaryOnly, true
	case "separate-canvas":
		return BridgeSeparate, true
	}
	return BridgeDuplicate, false
}

// CollectionOptions configures [ByCollection].
type CollectionOptions struct {
	// Bridge selects bridge-person handling. Default: BridgeDuplicate.
	Bridge BridgeHandling

	// PriorityOrder ranks collections for BridgePrimaryOnly. Collections
	// not listed rank after all listed ones, alphabetically.
	PriorityOrder []string
}

// Group is one collection's worth of people.
type Group struct {
	// Name is the collection tag, or UncollectedGroup / BridgeGroup.
	Name string
	// IDs are the members in sorted order.
	IDs []string
}

// BridgePeople returns everyone tagged with two or more collections, in
// sorted order.
func BridgePeople(t *tree.Tree) []string {
	var out []string
	for _, p := range t.People() {
		if len(p.Collections) >= 2 {
			out = append(out, p.ID)
		}
	}
	return out
}

// ByCollection groups all people by their collection tags.
//
// People with no tag form the UncollectedGroup. Bridge people (two or more
// tags) are placed according to opts.Bridge. Groups are returned with
// collection names sorted alphabetically, followed by the uncollected group
// and then the bridge group when present; empty groups are omitted.
func ByCollection(t *tree.Tree, opts CollectionOptions) []Group {
	members := make(map[string][]string)
	var uncollected, bridges []string

	for _, p := range t.People() {
		switch {
		case len(p.Collections) == 0:
			uncollected = append(uncollected, p.ID)
		case len(p.Collections) >= 2 && opts.Bridge == BridgeSeparate:
			bridges = append(bridges, p.ID)
		case len(p.Collections) >= 2 && opts.Bridge == BridgePrimaryOnly:
			primary := primaryCollection(p.Collections, opts.PriorityOrder)
			members[primary] = append(members[primary], p.ID)
		default:
			// Single tag, or duplicate handling: one entry per tag.
			for _, c := range uniqueSorted(p.Collections) {
				members[c] = append(members[c], p.ID)
			}
		}
	}

	var groups []Group
	for _, name := range slices.Sorted(maps.Keys(members)) {
		ids := members[name]
		slices.Sort(ids)
		groups = append(groups, Group{Name: name, IDs: ids})
	}
	if len(uncollected) > 0 {
		groups = append(groups, Group{Name: UncollectedGroup, IDs: uncollected})
	}
	if len(bridges) > 0 {
		groups = append(groups, Group{Name: BridgeGroup, IDs: bridges})
	}
	return groups
}

// primaryCollection picks the highest-priority tag: first match in the
// caller's priority order, otherwise the alphabetically first tag.
func primaryCollection(tags, priority []string) string {
	for _, p := range priority {
		if slices.Contains(tags, p) {
			return p
		}
	}
	return slices.Min(tags)
}

// uniqueSorted deduplicates and sorts a tag list.
func uniqueSorted(tags []string) []string {
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}
