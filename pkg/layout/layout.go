package layout

import (
	"slices"

	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// Position is one person's computed placement. Coordinates are in user
// units (typically pixels); y grows downward, so ancestors sit at negative
// y above the root.
type Position struct {
	X, Y       float64
	Generation int
}

// Options configures layout computation. The zero value is usable: call
// SetDefaults (Compute does this internally) to fill in the documented
// defaults.
type Options struct {
	// NodeWidth is the horizontal extent reserved per person. Default: 250.
	NodeWidth float64

	// NodeHeight is the vertical extent reserved per person. Default: 120.
	NodeHeight float64

	// Gap is the fixed spacing between adjacent nodes, both within a
	// generation row and between rows. Default: 200.
	Gap float64

	// Direction controls generation numbering signs, matching
	// [traverse.Generations]. Default: traverse.Up.
	Direction traverse.Direction

	// SizeThreshold is the tree size above which [ForTree] substitutes the
	// faster, less spouse-aware hierarchical strategy. Default: 200.
	SizeThreshold int
}

// SetDefaults fills zero-valued fields with their documented defaults.
func (o *Options) SetDefaults() {
	if o.NodeWidth <= 0 {
		o.NodeWidth = 250
	}
	if o.NodeHeight <= 0 {
		o.NodeHeight = 120
	}
	if o.Gap <= 0 {
		o.Gap = 200
	}
	if o.SizeThreshold <= 0 {
		o.SizeThreshold = 200
	}
}

// Result is the outcome of [Compute]: positions for everyone who could be
// placed, plus the IDs the fallback chain could not position.
type Result struct {
	Positions map[string]Position
	Unplaced  []string
}

// Strategy turns a tree into raw positions. Strategies only produce an
// initial placement; [Compute] layers the cross-cutting passes (fallback
// placement, sibling regrouping, spacing enforcement) on top of any
// strategy's output.
type Strategy interface {
	// Name identifies the strategy for labels and CLI flags.
	Name() string

	// Compute places people relative to the tree's root. People the
	// strategy does not track are simply absent from the map.
	Compute(t *tree.Tree, opts Options) map[string]Position
}

// ForTree picks a strategy by tree size: the spouse-aware family-chart
// strategy below opts.SizeThreshold, the plain hierarchical strategy above
// it.
func ForTree(t *tree.Tree, opts Options) Strategy {
	opts.SetDefaults()
	if t.Size() > opts.SizeThreshold {
		return Hierarchical{}
	}
	return FamilyChart{}
}

// Parse converts a strategy name ("hierarchical", "family-chart",
// "timeline", "hourglass") to its implementation.
func Parse(name string) (Strategy, bool) {
	switch name {
	case "hierarchical":
		return Hierarchical{}, true
	case "family-chart":
		return FamilyChart{}, true
	case "timeline":
		return Timeline{}, true
	case "hourglass":
		return Hourglass{}, true
	}
	return nil, false
}

// Compute runs the strategy and then the cross-cutting post-processing
// passes, in order: fallback placement for people the strategy omitted,
// sibling regrouping within each generation row, and minimum-spacing
// enforcement. People that even the fallback chain cannot anchor are
// reported in Result.Unplaced, sorted.
//
// Returns tree.ErrPersonNotFound when the tree has no valid root.
func Compute(t *tree.Tree, s Strategy, opts Options) (Result, error) {
	opts.SetDefaults()
	if !t.Contains(t.RootID()) {
		return Result{}, tree.ErrPersonNotFound
	}

	positions := s.Compute(t, opts)
	if positions == nil {
		positions = make(map[string]Position)
	}

	unplaced := placeOmitted(t, positions, opts)
	positions = RegroupSiblings(t, positions, opts)
	positions = EnforceSpacing(positions, opts)

	slices.Sort(unplaced)
	return Result{Positions: positions, Unplaced: unplaced}, nil
}

// levelY maps a generation number to a row y-coordinate, keeping ancestors
// above the root regardless of numbering direction.
func levelY(gen int, opts Options) float64 {
	step := opts.NodeHeight + opts.Gap
	if opts.Direction == traverse.Down {
		return float64(gen) * step
	}
	return -float64(gen) * step
}

// hstep is the horizontal distance between adjacent slots in a row.
func hstep(opts Options) float64 { return opts.NodeWidth + opts.Gap }
