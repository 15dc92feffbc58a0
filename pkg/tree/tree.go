package tree

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidPersonID is returned by [Tree.AddPerson] when the person ID
	// is empty. All people must have non-empty identifiers.
	ErrInvalidPersonID = errors.New("person ID must not be empty")

	// ErrDuplicatePersonID is returned by [Tree.AddPerson] when a person with
	// the same ID already exists in the tree. Person IDs must be unique.
	ErrDuplicatePersonID = errors.New("duplicate person ID")

	// ErrPersonNotFound is returned when a referenced root or anchor ID is
	// absent from the tree.
	ErrPersonNotFound = errors.New("person not found")
)

// Sex is the recorded sex of a person. It only drives label selection in
// relationship naming; unknown values fall back to neutral terms.
type Sex int

const (
	// SexUnknown means no sex was recorded.
	SexUnknown Sex = iota
	// SexMale selects male relationship labels (Father, Uncle, ...).
	SexMale
	// SexFemale selects female relationship labels (Mother, Aunt, ...).
	SexFemale
	// SexNonbinary is recorded but labeled with the neutral terms.
	SexNonbinary
)

// Person is one person in a family tree.
//
// The per-person link fields (FatherID, MotherID, SpouseIDs, ChildrenIDs) are
// the single source of truth for graph structure. Edge lists are derived from
// them on demand via [Tree.Edges] and are never stored separately, so they
// cannot drift out of sync.
//
// An empty FatherID or MotherID means the parent is unknown, not that no
// parent exists. SpouseIDs is ordered: the order carries marriage sequence
// information and must be preserved by every transformation. ChildrenIDs
// carries no ordering guarantee.
type Person struct {
	ID        string // Unique identifier, stable across sessions
	Name      string
	Sex       Sex
	BirthDate string // Free-form, possibly partial (e.g. "ABT 1850")
	DeathDate string

	FatherID    string
	MotherID    string
	SpouseIDs   []string
	ChildrenIDs []string

	// Collections are free-text grouping tags. A person carrying two or more
	// tags is a bridge person for collection partitioning.
	Collections []string

	// SourceRef is an opaque handle back to the external persisted record.
	// It is carried through every derived tree and never interpreted here.
	SourceRef string
}

// Clone returns a deep copy of the person. Link slices are copied so the
// clone can be filtered without mutating the original.
func (p *Person) Clone() *Person {
	c := *p
	c.SpouseIDs = slices.Clone(p.SpouseIDs)
	c.ChildrenIDs = slices.Clone(p.ChildrenIDs)
	c.Collections = slices.Clone(p.Collections)
	return &c
}

// EdgeKind distinguishes the kinds of derived edges.
type EdgeKind int

const (
	// EdgeParent is a directed parent→child edge.
	EdgeParent EdgeKind = iota
	// EdgeSpouse is an undirected spousal edge, emitted once per pair.
	EdgeSpouse
	// EdgeCustom is a caller-defined relationship edge.
	EdgeCustom
)

// Edge is a denormalized view of one link between two people. For EdgeParent,
// From is the parent and To is the child. For EdgeSpouse the pair is emitted
// once, with From < To in canonical (lexicographic) order.
type Edge struct {
	From  string
	To    string
	Kind  EdgeKind
	Label string // Only set for EdgeCustom
}

// Tree is an in-memory snapshot of a family graph rooted at one person.
//
// A Tree is treated as immutable for the duration of one computation. The
// traversal, partitioning, and layout packages only read it; the one
// operation that produces modified people, [Tree.Subset], returns a new Tree
// with cloned Person values.
//
// The graph may be malformed: links can dangle, spouse claims can be
// asymmetric, and cycles can exist. Tree tolerates all of it; accessors skip
// dangling references and traversals must carry visited sets.
//
// The zero value is not usable - use New.
type Tree struct {
	rootID string
	people map[string]*Person
}

// New creates an empty tree. Set the root with [Tree.SetRoot] after adding
// the root person.
func New() *Tree {
	return &Tree{people: make(map[string]*Person)}
}

// AddPerson adds a person to the tree. Returns ErrInvalidPersonID if the ID
// is empty, or ErrDuplicatePersonID if the ID is already present.
//
// The person is stored by pointer; callers hand over ownership and must not
// mutate it afterwards.
func (t *Tree) AddPerson(p *Person) error {
	if p.ID == "" {
		return ErrInvalidPersonID
	}
	if _, exists := t.people[p.ID]; exists {
		return ErrDuplicatePersonID
	}
	t.people[p.ID] = p
	return nil
}

// SetRoot designates the tree's root person. Returns ErrPersonNotFound if
// the ID has not been added.
func (t *Tree) SetRoot(id string) error {
	if _, ok := t.people[id]; !ok {
		return ErrPersonNotFound
	}
	t.rootID = id
	return nil
}

// RootID returns the root person's ID, or "" if no root was set.
func (t *Tree) RootID() string { return t.rootID }

// Root returns the root person, or nil if no root was set.
func (t *Tree) Root() *Person { return t.people[t.rootID] }

// Person returns the person with the given ID and true, or nil and false.
func (t *Tree) Person(id string) (*Person, bool) {
	p, ok := t.people[id]
	return p, ok
}

// Contains reports whether the ID belongs to the tree.
func (t *Tree) Contains(id string) bool {
	_, ok := t.people[id]
	return ok
}

// Size returns the number of people in the tree.
func (t *Tree) Size() int { return len(t.people) }

// IDs returns all person IDs in sorted order for deterministic iteration.
func (t *Tree) IDs() []string {
	return slices.Sorted(maps.Keys(t.people))
}

// People returns all people sorted by ID.
func (t *Tree) People() []*Person {
	out := make([]*Person, 0, len(t.people))
	for _, id := range t.IDs() {
		out = append(out, t.people[id])
	}
	return out
}

// ParentsOf returns the recorded parents of the person that are present in
// the tree: father first, then mother. Dangling parent references are
// silently skipped. Returns nil for an unknown ID.
func (t *Tree) ParentsOf(id string) []string {
	p, ok := t.people[id]
	if !ok {
		return nil
	}
	var parents []string
	if p.FatherID != "" && t.Contains(p.FatherID) {
		parents = append(parents, p.FatherID)
	}
	if p.MotherID != "" && t.Contains(p.MotherID) {
		parents = append(parents, p.MotherID)
	}
	return parents
}

// ChildrenOf returns the recorded children of the person that are present in
// the tree. Dangling references are skipped.
func (t *Tree) ChildrenOf(id string) []string {
	p, ok := t.people[id]
	if !ok {
		return nil
	}
	var children []string
	for _, c := range p.ChildrenIDs {
		if t.Contains(c) {
			children = append(children, c)
		}
	}
	return children
}

// SpousesOf returns the recorded spouses of the person that are present in
// the tree, preserving marriage order. Spouse claims are not required to be
// symmetric; this only reflects the person's own claim.
func (t *Tree) SpousesOf(id string) []string {
	p, ok := t.people[id]
	if !ok {
		return nil
	}
	var spouses []string
	for _, s := range p.SpouseIDs {
		if t.Contains(s) {
			spouses = append(spouses, s)
		}
	}
	return spouses
}

// IsParentOf reports whether parent is a recorded father or mother of child.
func (t *Tree) IsParentOf(parent, child string) bool {
	c, ok := t.people[child]
	if !ok {
		return false
	}
	return c.FatherID == parent || c.MotherID == parent
}

// Edges derives the denormalized edge list from the per-person link fields.
//
// One parent edge is emitted per retained parent link. Spouse pairs are
// emitted exactly once each: the pair is canonicalized with the smaller ID
// first, so symmetric claims collapse into a single edge and asymmetric
// claims (A lists B but B does not list A) still produce the edge.
//
// Edges are ordered by sorted person ID and are a fresh allocation on every
// call.
func (t *Tree) Edges() []Edge {
	var edges []Edge
	seenSpouse := make(map[[2]string]bool)

	for _, id := range t.IDs() {
		for _, parent := range t.ParentsOf(id) {
			edges = append(edges, Edge{From: parent, To: id, Kind: EdgeParent})
		}
		for _, spouse := range t.SpousesOf(id) {
			pair := canonicalPair(id, spouse)
			if seenSpouse[pair] {
				continue
			}
			seenSpouse[pair] = true
			edges = append(edges, Edge{From: pair[0], To: pair[1], Kind: EdgeSpouse})
		}
	}
	return edges
}

// canonicalPair orders two IDs lexicographically so an unordered pair has a
// single representation.
func canonicalPair(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
