package partition

import (
	"errors"
	"slices"

	"github.com/matzehuels/kintree/pkg/tree"
)

// ErrNoPath is returned by [Lineage] when the two anchors are in
// disconnected components of the tree.
var ErrNoPath = errors.New("no kinship path between anchors")

// Connection classifies how a boundary person is linked to people outside
// their extraction. A navigation link of this kind should be drawn by the
// caller.
type Connection string

const (
	// ConnectionPaternal means the person's father falls outside.
	ConnectionPaternal Connection = "paternal"
	// ConnectionMaternal means the person's mother falls outside.
	ConnectionMaternal Connection = "maternal"
	// ConnectionDescendants means at least one child falls outside.
	ConnectionDescendants Connection = "descendants"
	// ConnectionSpouseFamily means at least one spouse falls outside.
	ConnectionSpouseFamily Connection = "spouse-family"
)

// BoundaryPerson is an included person with direct relatives outside the
// extraction, tagged with the kinds of outside connection they have.
type BoundaryPerson struct {
	ID          string
	Connections []Connection
}

// Extraction is the common result shape of every partitioner: a descriptive
// label, the included person IDs in sorted order, and the boundary people
// the caller needs for cross-partition navigation links.
//
// An Extraction with no IDs is a valid empty result; callers are expected to
// skip downstream work for it rather than treat it as an error.
type Extraction struct {
	Label    string
	IDs      []string
	Boundary []BoundaryPerson
}

// Empty reports whether the extraction selected nobody.
func (e Extraction) Empty() bool { return len(e.IDs) == 0 }

// Contains reports whether the extraction includes the ID.
func (e Extraction) Contains(id string) bool {
	_, found := slices.BinarySearch(e.IDs, id)
	return found
}

// newExtraction assembles an Extraction from an include set: IDs are sorted
// and boundary people computed against the full tree.
func newExtraction(t *tree.Tree, label string, include map[string]bool) Extraction {
	ids := make([]string, 0, len(include))
	for id := range include {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return Extraction{
		Label:    label,
		IDs:      ids,
		Boundary: boundaryPeople(t, include),
	}
}

// boundaryPeople finds every included person with a parent, child, or spouse
// link pointing outside the set, tagged by connection kind. Dangling links
// (to people the tree itself does not contain) are not outside connections;
// they are malformed data and are ignored.
func boundaryPeople(t *tree.Tree, include map[string]bool) []BoundaryPerson {
	var out []BoundaryPerson
	ids := make([]string, 0, len(include))
	for id := range include {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		p, ok := t.Person(id)
		if !ok {
			continue
		}
		var conns []Connection
		if p.FatherID != "" && t.Contains(p.FatherID) && !include[p.FatherID] {
			conns = append(conns, ConnectionPaternal)
		}
		if p.MotherID != "" && t.Contains(p.MotherID) && !include[p.MotherID] {
			conns = append(conns, ConnectionMaternal)
		}
		for _, c := range t.ChildrenOf(id) {
			if !include[c] {
				conns = append(conns, ConnectionDescendants)
				break
			}
		}
		for _, s := range t.SpousesOf(id) {
			if !include[s] {
				conns = append(conns, ConnectionSpouseFamily)
				break
			}
		}
		if len(conns) > 0 {
			out = append(out, BoundaryPerson{ID: id, Connections: conns})
		}
	}
	return out
}

// addSpouses merges the spouses of every member into the set as a flat
// addition: spouses are included but never recursed into.
func addSpouses(t *tree.Tree, include map[string]bool) {
	members := make([]string, 0, len(include))
	for id := range include {
		members = append(members, id)
	}
	for _, id := range members {
		for _, s := range t.SpousesOf(id) {
			include[s] = true
		}
	}
}

// displayName returns the person's name, falling back to the ID.
func displayName(t *tree.Tree, id string) string {
	if p, ok := t.Person(id); ok && p.Name != "" {
		return p.Name
	}
	return id
}
