package tree

import (
	"slices"
	"testing"
)

// threeGen builds:
//
//	grandpa ─ grandma
//	      \  /
//	      dad ─ mom
//	        \  /
//	    child1  child2
func threeGen(t *testing.T) *Tree {
	t.Helper()
	return build(t, "child1",
		&Person{ID: "grandpa", Sex: SexMale, SpouseIDs: []string{"grandma"}, ChildrenIDs: []string{"dad"}},
		&Person{ID: "grandma", Sex: SexFemale, SpouseIDs: []string{"grandpa"}, ChildrenIDs: []string{"dad"}},
		&Person{ID: "dad", Sex: SexMale, FatherID: "grandpa", MotherID: "grandma", SpouseIDs: []string{"mom"}, ChildrenIDs: []string{"child1", "child2"}},
		&Person{ID: "mom", Sex: SexFemale, SpouseIDs: []string{"dad"}, ChildrenIDs: []string{"child1", "child2"}},
		&Person{ID: "child1", FatherID: "dad", MotherID: "mom"},
		&Person{ID: "child2", FatherID: "dad", MotherID: "mom"},
	)
}

func TestSubset_DropsDanglingReferences(t *testing.T) {
	tr := threeGen(t)
	include := IDSet([]string{"dad", "mom", "child1"})

	sub, err := tr.Subset(include, "dad")
	if err != nil {
		t.Fatalf("Subset() = %v", err)
	}

	if sub.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", sub.Size())
	}

	dad, _ := sub.Person("dad")
	if dad.FatherID != "" || dad.MotherID != "" {
		t.Errorf("dad parents = (%q, %q), want dropped", dad.FatherID, dad.MotherID)
	}
	if !slices.Equal(dad.ChildrenIDs, []string{"child1"}) {
		t.Errorf("dad children = %v, want [child1]", dad.ChildrenIDs)
	}

	// No retained reference may point outside the subset.
	for _, p := range sub.People() {
		for _, ref := range append(append([]string{p.FatherID, p.MotherID}, p.SpouseIDs...), p.ChildrenIDs...) {
			if ref != "" && !sub.Contains(ref) {
				t.Errorf("person %s has dangling reference %s", p.ID, ref)
			}
		}
	}
}

func TestSubset_DoesNotMutateOriginal(t *testing.T) {
	tr := threeGen(t)
	include := IDSet([]string{"dad", "child1"})

	if _, err := tr.Subset(include, "dad"); err != nil {
		t.Fatalf("Subset() = %v", err)
	}

	dad, _ := tr.Person("dad")
	if dad.FatherID != "grandpa" {
		t.Errorf("original dad.FatherID = %q, want grandpa", dad.FatherID)
	}
	if !slices.Equal(dad.ChildrenIDs, []string{"child1", "child2"}) {
		t.Errorf("original dad.ChildrenIDs = %v, want unchanged", dad.ChildrenIDs)
	}
}

func TestSubset_RootNotIncluded(t *testing.T) {
	tr := threeGen(t)

	_, err := tr.Subset(IDSet([]string{"dad"}), "child1")
	if err != ErrRootNotInSubset {
		t.Errorf("Subset() = %v, want ErrRootNotInSubset", err)
	}
}

func TestSubset_RootMissingFromTree(t *testing.T) {
	tr := threeGen(t)

	_, err := tr.Subset(IDSet([]string{"ghost"}), "ghost")
	if err != ErrPersonNotFound {
		t.Errorf("Subset() = %v, want ErrPersonNotFound", err)
	}
}

func TestSubset_SpouseEdgesRebuilt(t *testing.T) {
	tr := threeGen(t)
	include := IDSet([]string{"dad", "mom"})

	sub, err := tr.Subset(include, "dad")
	if err != nil {
		t.Fatalf("Subset() = %v", err)
	}

	edges := sub.Edges()
	if len(edges) != 1 {
		t.Fatalf("edges = %v, want one spouse edge", edges)
	}
	if edges[0].Kind != EdgeSpouse {
		t.Errorf("edge kind = %v, want EdgeSpouse", edges[0].Kind)
	}
}

func TestFindBestRoot_PrefersTopmost(t *testing.T) {
	tr := threeGen(t)
	within := IDSet([]string{"dad", "mom", "child1", "child2"})

	// dad's parents are outside the subset, so despite mom having the same
	// descendant count the tie breaks on input order; both carry the top
	// bonus. Listing mom first shows the tie-break.
	got := tr.FindBestRoot([]string{"mom", "dad"}, within)
	if got != "mom" {
		t.Errorf("FindBestRoot() = %s, want mom (first highest)", got)
	}
}

func TestFindBestRoot_DescendantCountWins(t *testing.T) {
	tr := threeGen(t)
	within := IDSet([]string{"grandpa", "dad", "child1", "child2"})

	// Both grandpa and child1 have no parents inside the subset; grandpa
	// reaches three descendants, child1 none.
	got := tr.FindBestRoot([]string{"child1", "grandpa"}, within)
	if got != "grandpa" {
		t.Errorf("FindBestRoot() = %s, want grandpa", got)
	}
}

func TestFindBestRoot_TopBonusBeatsDescendants(t *testing.T) {
	tr := threeGen(t)
	within := IDSet([]string{"dad", "child1", "child2"})

	// child1 has dad inside the subset, so only dad gets the top bonus even
	// if child1 were given extra descendants.
	got := tr.FindBestRoot([]string{"child1", "dad"}, within)
	if got != "dad" {
		t.Errorf("FindBestRoot() = %s, want dad", got)
	}
}

func TestFindBestRoot_NoUsableCandidate(t *testing.T) {
	tr := threeGen(t)

	got := tr.FindBestRoot([]string{"ghost"}, IDSet([]string{"dad"}))
	if got != "" {
		t.Errorf("FindBestRoot() = %q, want empty", got)
	}
}

func TestCountDescendantsWithin_CycleSafe(t *testing.T) {
	// a is their own ancestor: a → b → a. Malformed, but must terminate.
	tr := build(t, "a",
		&Person{ID: "a", FatherID: "b", ChildrenIDs: []string{"b"}},
		&Person{ID: "b", FatherID: "a", ChildrenIDs: []string{"a"}},
	)
	within := IDSet([]string{"a", "b"})

	if got := tr.countDescendantsWithin("a", within); got != 1 {
		t.Errorf("countDescendantsWithin(a) = %d, want 1", got)
	}
}
