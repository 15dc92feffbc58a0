package partition

import (
	"slices"
	"testing"

	"github.com/matzehuels/kintree/pkg/tree"
)

// hourglassTree: two generations above and below a central person.
func hourglassTree(t *testing.T) *tree.Tree {
	t.Helper()
	return build(t, "mid",
		&tree.Person{ID: "mid", FatherID: "dad", SpouseIDs: []string{"wife"}, ChildrenIDs: []string{"kid"}},
		&tree.Person{ID: "wife", SpouseIDs: []string{"mid"}},
		&tree.Person{ID: "dad", FatherID: "gf", ChildrenIDs: []string{"mid"}},
		&tree.Person{ID: "gf", ChildrenIDs: []string{"dad"}},
		&tree.Person{ID: "kid", FatherID: "mid", ChildrenIDs: []string{"gkid"}},
		&tree.Person{ID: "gkid", FatherID: "kid"},
	)
}

func TestAncestorDescendant(t *testing.T) {
	tr := hourglassTree(t)

	got, err := AncestorDescendant(tr, "mid", HourglassOptions{SkipSpouses: true})
	if err != nil {
		t.Fatalf("AncestorDescendant() = %v", err)
	}

	if want := []string{"dad", "gf", "mid"}; !slices.Equal(got.Ancestors.IDs, want) {
		t.Errorf("Ancestors = %v, want %v", got.Ancestors.IDs, want)
	}
	if want := []string{"gkid", "kid", "mid"}; !slices.Equal(got.Descendants.IDs, want) {
		t.Errorf("Descendants = %v, want %v", got.Descendants.IDs, want)
	}
	// The root belongs to both subsets but counts once in the union.
	if got.Total != 5 {
		t.Errorf("Total = %d, want 5", got.Total)
	}
}

func TestAncestorDescendant_SpouseMerge(t *testing.T) {
	tr := hourglassTree(t)

	got, err := AncestorDescendant(tr, "mid", HourglassOptions{})
	if err != nil {
		t.Fatalf("AncestorDescendant() = %v", err)
	}
	if !got.Ancestors.Contains("wife") || !got.Descendants.Contains("wife") {
		t.Error("root's spouse missing from a subset with spouse merge on")
	}
	if got.Total != 6 {
		t.Errorf("Total = %d, want 6", got.Total)
	}
}

func TestAncestorDescendant_Depths(t *testing.T) {
	tr := hourglassTree(t)

	got, err := AncestorDescendant(tr, "mid", HourglassOptions{
		AncestorDepth:   1,
		DescendantDepth: 1,
		SkipSpouses:     true,
	})
	if err != nil {
		t.Fatalf("AncestorDescendant() = %v", err)
	}
	if got.Ancestors.Contains("gf") {
		t.Errorf("Ancestors = %v, depth bound ignored", got.Ancestors.IDs)
	}
	if got.Descendants.Contains("gkid") {
		t.Errorf("Descendants = %v, depth bound ignored", got.Descendants.IDs)
	}
}

func TestAncestorDescendant_Labels(t *testing.T) {
	tr := hourglassTree(t)

	got, err := AncestorDescendant(tr, "mid", HourglassOptions{})
	if err != nil {
		t.Fatalf("AncestorDescendant() = %v", err)
	}
	if got.Ancestors.Label != "Ancestors of mid" {
		t.Errorf("ancestor label = %q", got.Ancestors.Label)
	}
	if got.Descendants.Label != "Descendants of mid" {
		t.Errorf("descendant label = %q", got.Descendants.Label)
	}
}

func TestAncestorDescendant_UnknownRoot(t *testing.T) {
	tr := hourglassTree(t)

	if _, err := AncestorDescendant(tr, "ghost", HourglassOptions{}); err != tree.ErrPersonNotFound {
		t.Errorf("err = %v, want ErrPersonNotFound", err)
	}
}

func TestAncestorDescendant_CycleSafe(t *testing.T) {
	// a and b are mutually parent and child; both walks must terminate.
	tr := build(t, "a",
		&tree.Person{ID: "a", FatherID: "b", ChildrenIDs: []string{"b"}},
		&tree.Person{ID: "b", FatherID: "a", ChildrenIDs: []string{"a"}},
	)

	got, err := AncestorDescendant(tr, "a", HourglassOptions{SkipSpouses: true})
	if err != nil {
		t.Fatalf("AncestorDescendant() = %v", err)
	}
	if got.Total != 2 {
		t.Errorf("Total = %d, want 2", got.Total)
	}
}
