package partition

import (
	"slices"
	"testing"

	"github.com/matzehuels/kintree/pkg/tree"
)

// collectionTree tags three families: the Jones side, the Smiths side, and a
// bridge person x married into both.
func collectionTree(t *testing.T) *tree.Tree {
	t.Helper()
	return build(t, "",
		&tree.Person{ID: "j1", Collections: []string{"Jones"}},
		&tree.Person{ID: "j2", Collections: []string{"Jones"}},
		&tree.Person{ID: "s1", Collections: []string{"Smiths"}},
		&tree.Person{ID: "x", Collections: []string{"Smiths", "Jones"}},
		&tree.Person{ID: "loner"},
	)
}

func groupByName(groups []Group, name string) (Group, bool) {
	for _, g := range groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

func TestByCollection_Duplicate(t *testing.T) {
	tr := collectionTree(t)

	groups := ByCollection(tr, CollectionOptions{})

	jones, ok := groupByName(groups, "Jones")
	if !ok || !slices.Equal(jones.IDs, []string{"j1", "j2", "x"}) {
		t.Errorf("Jones = %v, want [j1 j2 x]", jones.IDs)
	}
	smiths, ok := groupByName(groups, "Smiths")
	if !ok || !slices.Equal(smiths.IDs, []string{"s1", "x"}) {
		t.Errorf("Smiths = %v, want [s1 x]", smiths.IDs)
	}
	unc, ok := groupByName(groups, UncollectedGroup)
	if !ok || !slices.Equal(unc.IDs, []string{"loner"}) {
		t.Errorf("Uncollected = %v, want [loner]", unc.IDs)
	}
	if _, ok := groupByName(groups, BridgeGroup); ok {
		t.Error("bridge group present under duplicate handling")
	}
}

func TestByCollection_PrimaryOnly(t *testing.T) {
	tr := collectionTree(t)

	groups := ByCollection(tr, CollectionOptions{
		Bridge:        BridgePrimaryOnly,
		PriorityOrder: []string{"Jones", "Smiths"},
	})

	jones, _ := groupByName(groups, "Jones")
	if !slices.Contains(jones.IDs, "x") {
		t.Errorf("Jones = %v, want x placed by priority order", jones.IDs)
	}
	smiths, _ := groupByName(groups, "Smiths")
	if slices.Contains(smiths.IDs, "x") {
		t.Errorf("Smiths = %v, x must appear only in its primary collection", smiths.IDs)
	}
}

func TestByCollection_PrimaryOnlyAlphabeticFallback(t *testing.T) {
	tr := collectionTree(t)

	// No priority order: the alphabetically first tag wins.
	groups := ByCollection(tr, CollectionOptions{Bridge: BridgePrimaryOnly})

	jones, _ := groupByName(groups, "Jones")
	if !slices.Contains(jones.IDs, "x") {
		t.Errorf("Jones = %v, want x under alphabetic fallback", jones.IDs)
	}
}

func TestByCollection_Separate(t *testing.T) {
	tr := collectionTree(t)

	groups := ByCollection(tr, CollectionOptions{Bridge: BridgeSeparate})

	bridge, ok := groupByName(groups, BridgeGroup)
	if !ok || !slices.Equal(bridge.IDs, []string{"x"}) {
		t.Errorf("bridge group = %v, want [x]", bridge.IDs)
	}
	jones, _ := groupByName(groups, "Jones")
	if slices.Contains(jones.IDs, "x") {
		t.Error("x still in Jones under separate-canvas handling")
	}
	// Group order: collections alphabetically, then uncollected, bridge last.
	last := groups[len(groups)-1]
	if last.Name != BridgeGroup {
		t.Errorf("last group = %q, want bridge group", last.Name)
	}
}

func TestByCollection_GroupOrder(t *testing.T) {
	tr := collectionTree(t)

	groups := ByCollection(tr, CollectionOptions{})
	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	want := []string{"Jones", "Smiths", UncollectedGroup}
	if !slices.Equal(names, want) {
		t.Errorf("group order = %v, want %v", names, want)
	}
}

func TestBridgePeople(t *testing.T) {
	tr := collectionTree(t)

	if got := BridgePeople(tr); !slices.Equal(got, []string{"x"}) {
		t.Errorf("BridgePeople() = %v, want [x]", got)
	}
}

func TestParseBridgeHandling(t *testing.T) {
	cases := []struct {
		in   string
		want BridgeHandling
		ok   bool
	}{
		{"", BridgeDuplicate, true},
		{"duplicate", BridgeDuplicate, true},
		{"primary-only", BridgePrimaryOnly, true},
		{"separate-canvas", BridgeSeparate, true},
		{"merge", BridgeDuplicate, false},
	}
	for _, tc := range cases {
		got, ok := ParseBridgeHandling(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseBridgeHandling(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
