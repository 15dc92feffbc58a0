// Package kinship translates kinship paths into english relationship names.
//
// Given the shortest parent/child path between two people (from
// [traverse.Path]), [Describe] counts the upward and downward steps and maps
// the shape onto the usual genealogy vocabulary: Father, Grandmother, Uncle,
// "Second cousin, once removed", and so on. Labels name what the path's last
// person is to the first, and sex-specific words are chosen by the last
// person's recorded sex, falling back to neutral terms (Parent, Sibling,
// Pibling) when it is unknown.
//
// [Relationship] is the convenience entry point that runs the path search
// and the naming in one call.
package kinship

import (
	"fmt"
	"strings"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// Self is the label for a path from a person to themselves.
const Self = "Self"

// Relationship names what target is to anchor: Relationship(t, "ada",
// "byron") answers the question "who is byron to ada?".
//
// Spousal connection short-circuits before path search, because spouse links
// are never kinship steps: if either person lists the other as a spouse the
// result is Husband/Wife/Spouse. Otherwise the shortest kinship path is
// searched and handed to [Describe].
//
// The boolean reports whether any relationship exists; disconnected people
// yield ("", false), which is an answer rather than an error.
func Relationship(t *tree.Tree, anchorID, targetID string) (string, bool) {
	anchor, okA := t.Person(anchorID)
	target, okT := t.Person(targetID)
	if !okA || !okT {
		return "", false
	}

	if anchorID != targetID && (claims(anchor, targetID) || claims(target, anchorID)) {
		return bySex(target.Sex, "Husband", "Wife", "Spouse"), true
	}

	path := traverse.Path(t, anchorID, targetID)
	if path == nil {
		return "", false
	}
	return Describe(t, path), true
}

// claims reports whether p lists id among its spouses.
func claims(p *tree.Person, id string) bool {
	for _, s := range p.SpouseIDs {
		if s == id {
			return true
		}
	}
	return false
}

// Describe names what the last person on the path is to the first.
//
// The path must be a kinship path: consecutive members connected by a
// parent/child link, as produced by [traverse.Path]. Each step is counted as
// up (toward an ancestor) or down (toward a descendant), and the (up, down)
// pair selects the label. An empty path yields "", a single-member path
// yields [Self].
func Describe(t *tree.Tree, path []string) string {
	if len(path) == 0 {
		return ""
	}
	if len(path) == 1 {
		return Self
	}

	var up, down int
	for i := 1; i < len(path); i++ {
		switch {
		case isUpStep(t, path[i-1], path[i]):
			up++
		default:
			down++
		}
	}

	last, _ := t.Person(path[len(path)-1])
	sex := tree.SexUnknown
	if last != nil {
		sex = last.Sex
	}
	return name(up, down, sex)
}

// isUpStep reports whether the step prev→curr moves toward an ancestor.
// Either side's recorded fields count: curr being prev's father/mother, or
// prev being listed among curr's children. Asymmetric records still classify.
func isUpStep(t *tree.Tree, prev, curr string) bool {
	if t.IsParentOf(curr, prev) {
		return true
	}
	p, ok := t.Person(curr)
	if !ok {
		return false
	}
	for _, c := range p.ChildrenIDs {
		if c == prev {
			return true
		}
	}
	return false
}

// name maps the step counts onto a relationship label, sexed for the person
// at the far end of the path.
func name(up, down int, sex tree.Sex) string {
	switch {
	case down == 0:
		return lineal(up, sex, "father", "mother", "parent")
	case up == 0:
		return lineal(down, sex, "son", "daughter", "child")
	case up == 1 && down == 1:
		return bySex(sex, "Brother", "Sister", "Sibling")
	case down == 1:
		// Anchor climbs up two or more, then one step down: uncle family,
		// with the same great- prefixing as grandparents.
		return collateral(up, sex, "uncle", "aunt", "pibling")
	case up == 1:
		return collateral(down, sex, "nephew", "niece", "nibling")
	case up == down:
		return cousinName(up - 1)
	default:
		degree := min(up, down) - 1
		return fmt.Sprintf("%s, %s removed", cousinName(degree), removalCount(abs(up-down)))
	}
}

// lineal names a pure ancestor or descendant line of n steps.
func lineal(n int, sex tree.Sex, male, female, neutral string) string {
	base := bySex(sex, male, female, neutral)
	if n == 1 {
		return capitalize(base)
	}
	grand := "grand" + base
	return greatPrefixed(n-2, grand)
}

// collateral names the uncle/nephew families: n is the long side of the
// path, so n == 2 is the plain term and longer paths take great- prefixes.
func collateral(n int, sex tree.Sex, male, female, neutral string) string {
	base := bySex(sex, male, female, neutral)
	return greatPrefixed(n-2, base)
}

// greatPrefixed prepends k repetitions of "great-" to base, switching to the
// compact "<k>x great-" form above two repetitions.
func greatPrefixed(k int, base string) string {
	switch {
	case k <= 0:
		return capitalize(base)
	case k <= 2:
		return capitalize(strings.Repeat("great-", k) + base)
	default:
		return fmt.Sprintf("%dx great-%s", k, base)
	}
}

// cousinName renders a cousin degree: First cousin, Second cousin, Third
// cousin, then "<n>th cousin".
func cousinName(degree int) string {
	switch degree {
	case 1:
		return "First cousin"
	case 2:
		return "Second cousin"
	case 3:
		return "Third cousin"
	default:
		return fmt.Sprintf("%dth cousin", degree)
	}
}

// removalCount renders cousin removal: once, twice, then "<n>x".
func removalCount(n int) string {
	switch n {
	case 1:
		return "once"
	case 2:
		return "twice"
	default:
		return fmt.Sprintf("%dx", n)
	}
}

// bySex picks the sexed variant of a term, neutral when unknown or
// nonbinary.
func bySex(sex tree.Sex, male, female, neutral string) string {
	switch sex {
	case tree.SexMale:
		return male
	case tree.SexFemale:
		return female
	default:
		return neutral
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
