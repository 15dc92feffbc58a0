package partition

import (
	"slices"
	"testing"

	"github.com/matzehuels/kintree/pkg/tree"
)

// lineageTree: great-grandchild gg up to ancestor top, with a sibling and a
// spouse hanging off the middle of the line.
func lineageTree(t *testing.T) *tree.Tree {
	t.Helper()
	return build(t, "gg",
		&tree.Person{ID: "gg", FatherID: "dad"},
		&tree.Person{ID: "dad", Sex: tree.SexMale, FatherID: "top", SpouseIDs: []string{"mom"}, ChildrenIDs: []string{"gg", "sis"}},
		&tree.Person{ID: "sis", FatherID: "top"},
		&tree.Person{ID: "mom", SpouseIDs: []string{"dad"}},
		&tree.Person{ID: "top", Sex: tree.SexMale, ChildrenIDs: []string{"dad", "sis"}},
		&tree.Person{ID: "island"},
	)
}

func TestLineage_BarePath(t *testing.T) {
	tr := lineageTree(t)

	got, err := Lineage(tr, "gg", "top", LineageOptions{SkipSpouses: true})
	if err != nil {
		t.Fatalf("Lineage() = %v", err)
	}
	if want := []string{"gg", "dad", "top"}; !slices.Equal(got.Path, want) {
		t.Errorf("Path = %v, want %v", got.Path, want)
	}
	if want := []string{"dad", "gg", "top"}; !slices.Equal(got.IDs, want) {
		t.Errorf("IDs = %v, want %v", got.IDs, want)
	}
	if got.Relationship != "Grandfather" {
		t.Errorf("Relationship = %q, want Grandfather", got.Relationship)
	}
}

func TestLineage_SpousesDefault(t *testing.T) {
	tr := lineageTree(t)

	got, err := Lineage(tr, "gg", "top", LineageOptions{})
	if err != nil {
		t.Fatalf("Lineage() = %v", err)
	}
	if !got.Contains("mom") {
		t.Errorf("IDs = %v, want dad's spouse included by default", got.IDs)
	}
}

func TestLineage_Siblings(t *testing.T) {
	tr := lineageTree(t)

	got, err := Lineage(tr, "gg", "top", LineageOptions{IncludeSiblings: true, SkipSpouses: true})
	if err != nil {
		t.Fatalf("Lineage() = %v", err)
	}
	if !got.Contains("sis") {
		t.Errorf("IDs = %v, want dad's sibling included", got.IDs)
	}
}

func TestLineage_Errors(t *testing.T) {
	tr := lineageTree(t)

	if _, err := Lineage(tr, "gg", "ghost", LineageOptions{}); err != tree.ErrPersonNotFound {
		t.Errorf("unknown anchor: err = %v, want ErrPersonNotFound", err)
	}
	if _, err := Lineage(tr, "gg", "island", LineageOptions{}); err != ErrNoPath {
		t.Errorf("disconnected anchors: err = %v, want ErrNoPath", err)
	}
}

func TestLineage_SelfAnchor(t *testing.T) {
	tr := lineageTree(t)

	got, err := Lineage(tr, "gg", "gg", LineageOptions{SkipSpouses: true})
	if err != nil {
		t.Fatalf("Lineage() = %v", err)
	}
	if want := []string{"gg"}; !slices.Equal(got.Path, want) {
		t.Errorf("Path = %v, want %v", got.Path, want)
	}
}
