package tree

import (
	"slices"
	"testing"
)

func build(t *testing.T, root string, people ...*Person) *Tree {
	t.Helper()
	tr := New()
	for _, p := range people {
		if err := tr.AddPerson(p); err != nil {
			t.Fatalf("AddPerson(%s) = %v", p.ID, err)
		}
	}
	if root != "" {
		if err := tr.SetRoot(root); err != nil {
			t.Fatalf("SetRoot(%s) = %v", root, err)
		}
	}
	return tr
}

func TestAddPerson_EmptyID(t *testing.T) {
	tr := New()
	if err := tr.AddPerson(&Person{}); err != ErrInvalidPersonID {
		t.Errorf("AddPerson() = %v, want ErrInvalidPersonID", err)
	}
}

func TestAddPerson_Duplicate(t *testing.T) {
	tr := New()
	_ = tr.AddPerson(&Person{ID: "a"})
	if err := tr.AddPerson(&Person{ID: "a"}); err != ErrDuplicatePersonID {
		t.Errorf("AddPerson() = %v, want ErrDuplicatePersonID", err)
	}
}

func TestSetRoot_Missing(t *testing.T) {
	tr := New()
	if err := tr.SetRoot("ghost"); err != ErrPersonNotFound {
		t.Errorf("SetRoot() = %v, want ErrPersonNotFound", err)
	}
}

func TestParentsOf_SkipsDangling(t *testing.T) {
	tr := build(t, "a",
		&Person{ID: "a", FatherID: "b", MotherID: "missing"},
		&Person{ID: "b"},
	)

	got := tr.ParentsOf("a")
	want := []string{"b"}
	if !slices.Equal(got, want) {
		t.Errorf("ParentsOf(a) = %v, want %v", got, want)
	}
}

func TestChildrenOf_SkipsDangling(t *testing.T) {
	tr := build(t, "a",
		&Person{ID: "a", ChildrenIDs: []string{"b", "missing", "c"}},
		&Person{ID: "b"},
		&Person{ID: "c"},
	)

	got := tr.ChildrenOf("a")
	want := []string{"b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("ChildrenOf(a) = %v, want %v", got, want)
	}
}

func TestSpousesOf_PreservesOrder(t *testing.T) {
	// Marriage order carries meaning and must survive filtering.
	tr := build(t, "a",
		&Person{ID: "a", SpouseIDs: []string{"z", "gone", "b"}},
		&Person{ID: "z"},
		&Person{ID: "b"},
	)

	got := tr.SpousesOf("a")
	want := []string{"z", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("SpousesOf(a) = %v, want %v", got, want)
	}
}

func TestEdges_ParentEdges(t *testing.T) {
	tr := build(t, "a",
		&Person{ID: "a", FatherID: "b", MotherID: "c"},
		&Person{ID: "b", ChildrenIDs: []string{"a"}},
		&Person{ID: "c", ChildrenIDs: []string{"a"}},
	)

	var parents []Edge
	for _, e := range tr.Edges() {
		if e.Kind == EdgeParent {
			parents = append(parents, e)
		}
	}
	if len(parents) != 2 {
		t.Fatalf("parent edges = %d, want 2", len(parents))
	}
	for _, e := range parents {
		if e.To != "a" {
			t.Errorf("parent edge target = %s, want a", e.To)
		}
	}
}

func TestEdges_SymmetricSpouseEmittedOnce(t *testing.T) {
	tr := build(t, "a",
		&Person{ID: "a", SpouseIDs: []string{"b"}},
		&Person{ID: "b", SpouseIDs: []string{"a"}},
	)

	edges := tr.Edges()
	if len(edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(edges))
	}
	e := edges[0]
	if e.Kind != EdgeSpouse || e.From != "a" || e.To != "b" {
		t.Errorf("edge = %+v, want canonical spouse edge a-b", e)
	}
}

func TestEdges_AsymmetricSpouseStillEmitted(t *testing.T) {
	// a claims b as spouse, b does not reciprocate. The edge exists anyway;
	// symmetry is never assumed.
	tr := build(t, "a",
		&Person{ID: "a", SpouseIDs: []string{"b"}},
		&Person{ID: "b"},
	)

	edges := tr.Edges()
	if len(edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(edges))
	}
	if edges[0].Kind != EdgeSpouse {
		t.Errorf("edge kind = %v, want EdgeSpouse", edges[0].Kind)
	}
}

func TestIsParentOf(t *testing.T) {
	tr := build(t, "a",
		&Person{ID: "a", FatherID: "b"},
		&Person{ID: "b"},
	)

	if !tr.IsParentOf("b", "a") {
		t.Errorf("IsParentOf(b, a) = false, want true")
	}
	if tr.IsParentOf("a", "b") {
		t.Errorf("IsParentOf(a, b) = true, want false")
	}
}

func TestIDs_Sorted(t *testing.T) {
	tr := build(t, "", &Person{ID: "c"}, &Person{ID: "a"}, &Person{ID: "b"})

	got := tr.IDs()
	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}
