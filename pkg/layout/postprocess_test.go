package layout

import (
	"slices"
	"testing"

	"github.com/matzehuels/kintree/pkg/tree"
)

func build(t *testing.T, root string, people ...*tree.Person) *tree.Tree {
	t.Helper()
	tr := tree.New()
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

func TestEnforceSpacing(t *testing.T) {
	positions := map[string]Position{
		"a": {X: 0, Y: 0},
		"b": {X: 50, Y: 0},
		"c": {X: 80, Y: 0},
	}

	got := EnforceSpacing(positions, Options{NodeWidth: 250, NodeHeight: 120, Gap: 20})

	want := map[string]float64{"a": 0, "b": 270, "c": 540}
	for id, x := range want {
		if got[id].X != x {
			t.Errorf("%s.X = %v, want %v", id, got[id].X, x)
		}
	}
	if positions["b"].X != 50 {
		t.Error("input map mutated")
	}
}

func TestEnforceSpacing_RowsIndependent(t *testing.T) {
	positions := map[string]Position{
		"a": {X: 0, Y: 0},
		"b": {X: 10, Y: 0},
		"c": {X: 5, Y: 320}, // Different row: no push from a/b.
	}

	got := EnforceSpacing(positions, Options{NodeWidth: 100, NodeHeight: 120, Gap: 20})

	if got["b"].X != 120 {
		t.Errorf("b.X = %v, want 120", got["b"].X)
	}
	if got["c"].X != 5 {
		t.Errorf("c.X = %v, want untouched 5", got["c"].X)
	}
}

func TestEnforceSpacing_AlreadySpaced(t *testing.T) {
	positions := map[string]Position{
		"a": {X: 0, Y: 0},
		"b": {X: 1000, Y: 0},
	}

	got := EnforceSpacing(positions, Options{NodeWidth: 100, NodeHeight: 100, Gap: 10})
	if got["b"].X != 1000 {
		t.Errorf("b.X = %v, spacious layout must not be compacted", got["b"].X)
	}
}

func TestRegroupSiblings(t *testing.T) {
	// s1 and s2 are full siblings split by an in-law sitting between them.
	tr := build(t, "s1",
		&tree.Person{ID: "dad", ChildrenIDs: []string{"s1", "s2"}},
		&tree.Person{ID: "mom", ChildrenIDs: []string{"s1", "s2"}},
		&tree.Person{ID: "s1", FatherID: "dad", MotherID: "mom"},
		&tree.Person{ID: "s2", FatherID: "dad", MotherID: "mom"},
		&tree.Person{ID: "inlaw", SpouseIDs: []string{"s1"}},
	)
	positions := map[string]Position{
		"s1":    {X: 0, Y: 0},
		"inlaw": {X: 300, Y: 0},
		"s2":    {X: 600, Y: 0},
	}

	got := RegroupSiblings(tr, positions, Options{NodeWidth: 250, NodeHeight: 120, Gap: 50})

	// The sibling group keeps its leftmost slot, the in-law moves right,
	// and the whole row is evenly re-spaced.
	if !(got["s1"].X < got["s2"].X && got["s2"].X < got["inlaw"].X) {
		t.Errorf("order = s1:%v s2:%v inlaw:%v, want siblings contiguous first",
			got["s1"].X, got["s2"].X, got["inlaw"].X)
	}
	if step := got["s2"].X - got["s1"].X; step != 300 {
		t.Errorf("slot step = %v, want 300", step)
	}
}

func TestRegroupSiblings_HalfSiblingsSeparate(t *testing.T) {
	// Same father, different mothers: distinct parent pairs, so the two
	// children form separate groups and the solo in the middle is not
	// pulled into either.
	tr := build(t, "a",
		&tree.Person{ID: "dad", ChildrenIDs: []string{"a", "b"}},
		&tree.Person{ID: "m1", ChildrenIDs: []string{"a"}},
		&tree.Person{ID: "m2", ChildrenIDs: []string{"b"}},
		&tree.Person{ID: "a", FatherID: "dad", MotherID: "m1"},
		&tree.Person{ID: "b", FatherID: "dad", MotherID: "m2"},
		&tree.Person{ID: "solo"},
	)
	positions := map[string]Position{
		"a":    {X: 0, Y: 0},
		"solo": {X: 300, Y: 0},
		"b":    {X: 600, Y: 0},
	}

	got := RegroupSiblings(tr, positions, Options{NodeWidth: 250, NodeHeight: 120, Gap: 50})

	if !(got["a"].X < got["solo"].X && got["solo"].X < got["b"].X) {
		t.Errorf("order = a:%v solo:%v b:%v, want original order kept",
			got["a"].X, got["solo"].X, got["b"].X)
	}
}

func TestFallbackChain(t *testing.T) {
	tr := build(t, "root",
		&tree.Person{ID: "root", SpouseIDs: []string{"wife"}, ChildrenIDs: []string{"kid"}},
		&tree.Person{ID: "wife", SpouseIDs: []string{"root"}},
		&tree.Person{ID: "kid", FatherID: "root"},
	)
	opts := Options{NodeWidth: 250, NodeHeight: 120, Gap: 200}
	positions := map[string]Position{"root": {X: 0, Y: 0}}

	unplaced := placeOmitted(tr, positions, opts)
	if unplaced != nil {
		t.Fatalf("unplaced = %v, want none", unplaced)
	}

	// wife: next to spouse.
	if got := positions["wife"]; got.X != 450 || got.Y != 0 {
		t.Errorf("wife = %+v, want next to root", got)
	}
	// kid: below parent.
	if got := positions["kid"]; got.X != 0 || got.Y != 320 || got.Generation != -1 {
		t.Errorf("kid = %+v, want below root at generation -1", got)
	}
}

func TestFallbackChain_ParentAboveChild(t *testing.T) {
	tr := build(t, "kid",
		&tree.Person{ID: "kid", FatherID: "dad"},
		&tree.Person{ID: "dad", ChildrenIDs: []string{"kid"}},
	)
	opts := Options{NodeWidth: 250, NodeHeight: 120, Gap: 200}
	positions := map[string]Position{"kid": {X: 100, Y: 0}}

	if unplaced := placeOmitted(tr, positions, opts); unplaced != nil {
		t.Fatalf("unplaced = %v", unplaced)
	}
	if got := positions["dad"]; got.X != 100 || got.Y != -320 || got.Generation != 1 {
		t.Errorf("dad = %+v, want above kid at generation 1", got)
	}
}

func TestFallbackChain_Transitive(t *testing.T) {
	// inlaw anchors only via wife, who herself needs a fallback pass.
	tr := build(t, "root",
		&tree.Person{ID: "root", SpouseIDs: []string{"wife"}},
		&tree.Person{ID: "wife", SpouseIDs: []string{"root"}, FatherID: "inlawDad"},
		&tree.Person{ID: "inlawDad", ChildrenIDs: []string{"wife"}},
	)
	positions := map[string]Position{"root": {X: 0, Y: 0}}

	if unplaced := placeOmitted(tr, positions, Options{NodeWidth: 250, NodeHeight: 120, Gap: 200}); unplaced != nil {
		t.Fatalf("unplaced = %v", unplaced)
	}
	if _, ok := positions["inlawDad"]; !ok {
		t.Error("second-pass anchor not placed")
	}
}

func TestFallbackChain_Unplaceable(t *testing.T) {
	tr := build(t, "root",
		&tree.Person{ID: "root"},
		&tree.Person{ID: "island"},
	)
	positions := map[string]Position{"root": {X: 0, Y: 0}}

	got := placeOmitted(tr, positions, Options{})
	if !slices.Equal(got, []string{"island"}) {
		t.Errorf("unplaced = %v, want [island]", got)
	}
}
