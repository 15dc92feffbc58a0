package tree

import "errors"

// ErrRootNotInSubset is returned by [Tree.Subset] when the chosen root is
// not a member of the included set.
var ErrRootNotInSubset = errors.New("root must be a member of the subset")

// bestRootTopBonus is the score awarded to a candidate whose father and
// mother are both outside the subset. Being structurally at the top of the
// extracted slice matters more than any realistic descendant count, so the
// bonus dominates.
const bestRootTopBonus = 10000

// Subset builds a new, consistent tree containing only the included people.
//
// Every retained person is a clone of the original with its FatherID,
// MotherID, SpouseIDs, and ChildrenIDs filtered down to references that are
// also included. Dangling references are dropped, not nulled with an error,
// so the result never points outside itself. Spouse order is preserved for
// the spouses that survive the filter.
//
// Returns ErrRootNotInSubset if rootID is not in include, or
// ErrPersonNotFound if rootID is absent from the tree entirely. People in
// include that the tree does not contain are ignored.
func (t *Tree) Subset(include map[string]bool, rootID string) (*Tree, error) {
	if !t.Contains(rootID) {
		return nil, ErrPersonNotFound
	}
	if !include[rootID] {
		return nil, ErrRootNotInSubset
	}

	sub := New()
	for _, id := range t.IDs() {
		if !include[id] {
			continue
		}
		p := t.people[id].Clone()
		if p.FatherID != "" && !include[p.FatherID] {
			p.FatherID = ""
		}
		if p.MotherID != "" && !include[p.MotherID] {
			p.MotherID = ""
		}
		p.SpouseIDs = filterIDs(p.SpouseIDs, include)
		p.ChildrenIDs = filterIDs(p.ChildrenIDs, include)
		sub.people[p.ID] = p
	}

	if err := sub.SetRoot(rootID); err != nil {
		return nil, err
	}
	return sub, nil
}

// filterIDs keeps the IDs that are members of include, preserving order.
func filterIDs(ids []string, include map[string]bool) []string {
	var out []string
	for _, id := range ids {
		if include[id] {
			out = append(out, id)
		}
	}
	return out
}

// FindBestRoot picks the candidate best suited to root a subset of the tree.
//
// The natural root of a full tree is frequently excluded from a derived
// sub-tree, so a replacement has to be chosen. Each candidate is scored by
// [rootScore]; the first candidate with the highest score wins, so ties
// break in input order. Candidates outside the subset or outside the tree
// score -1 and can never win over a valid candidate.
//
// Returns "" when no candidate is usable.
func (t *Tree) FindBestRoot(candidates []string, within map[string]bool) string {
	best := ""
	bestScore := -1
	for _, id := range candidates {
		if s := t.rootScore(id, within); s > bestScore {
			best = id
			bestScore = s
		}
	}
	return best
}

// rootScore scores a root candidate restricted to a subset: the number of
// distinct descendants reachable within the subset, plus a large constant
// bonus when neither recorded parent is a member. The bonus rewards being
// structurally at the top of the subset.
//
// Returns -1 when the candidate is not a usable member of the subset.
func (t *Tree) rootScore(id string, within map[string]bool) int {
	p, ok := t.people[id]
	if !ok || !within[id] {
		return -1
	}

	score := t.countDescendantsWithin(id, within)
	fatherIn := p.FatherID != "" && within[p.FatherID]
	motherIn := p.MotherID != "" && within[p.MotherID]
	if !fatherIn && !motherIn {
		score += bestRootTopBonus
	}
	return score
}

// countDescendantsWithin counts distinct descendants of id reachable through
// child links that stay inside the subset. BFS with a visited set, so cyclic
// data terminates.
func (t *Tree) countDescendantsWithin(id string, within map[string]bool) int {
	visited := map[string]bool{id: true}
	queue := []string{id}
	count := 0

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, child := range t.ChildrenOf(curr) {
			if visited[child] || !within[child] {
				continue
			}
			visited[child] = true
			count++
			queue = append(queue, child)
		}
	}
	return count
}

// IDSet converts a slice of IDs into the set form used by Subset and
// FindBestRoot.
func IDSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
