package cli

import (
	"cmp"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kintree/pkg/canvas"
	apperrors "github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/partition"
	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// partitionOptions collects the flags shared across partition strategies.
type partitionOptions struct {
	strategy    string
	outputDir   string
	rootID      string
	direction   string
	span        int
	branchKind  string
	targetID    string
	maxDepth    int
	noSpouses   bool
	siblings    bool
	bridge      string
	priority    []string
	lineageFrom string
	lineageTo   string
}

// partitionCommand creates the partition command.
func (c *CLI) partitionCommand() *cobra.Command {
	var opts partitionOptions

	cmd := &cobra.Command{
		Use:   "partition [tree.json]",
		Short: "Split a tree into linkable sub-trees",
		Long: `Split a tree file into coherent sub-trees, one output file per part.

Strategies:
  gen-range   bucket people into generation windows (--span)
  branch      one side of the family relative to --root (--kind)
  collection  group by collection tags (--bridge for people in several)
  lineage     the direct line between --from and --to
  hourglass   ancestors and descendants of --root as two files

Each part is written as its own tree file, rooted at its best root: the
person with the most descendants inside the part, with a bonus for topmost
ancestors. Boundary people with relatives in other parts are logged so
cross-part links can be drawn.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPartition(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "gen-range", "partition strategy: gen-range, branch, collection, lineage, hourglass")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", ".", "directory for the part files")
	cmd.Flags().StringVar(&opts.rootID, "root", "", "anchor person ID (default: the tree file's root)")
	cmd.Flags().StringVar(&opts.direction, "direction", cmp.Or(c.Config.Direction, "up"), "generation direction: up (default), down")
	cmd.Flags().IntVar(&opts.span, "span", c.Config.generationSpan(), "generations per part (gen-range)")
	cmd.Flags().StringVar(&opts.branchKind, "kind", "paternal", "branch kind: paternal, maternal, descendants, custom")
	cmd.Flags().StringVar(&opts.targetID, "target", "", "target person ID (branch descendants/custom)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "walk depth bound, 0 = unlimited")
	cmd.Flags().BoolVar(&opts.noSpouses, "no-spouses", false, "exclude spouses of included people")
	cmd.Flags().BoolVar(&opts.siblings, "siblings", false, "include path members' siblings (lineage)")
	cmd.Flags().StringVar(&opts.bridge, "bridge", "duplicate", "bridge people handling: duplicate, primary-only, separate-canvas")
	cmd.Flags().StringSliceVar(&opts.priority, "priority", nil, "collection priority order (primary-only)")
	cmd.Flags().StringVar(&opts.lineageFrom, "from", "", "lineage start person ID")
	cmd.Flags().StringVar(&opts.lineageTo, "to", "", "lineage end person ID")

	return cmd
}

func (c *CLI) runPartition(input string, opts partitionOptions) error {
	t, err := loadTree(input)
	if err != nil {
		return err
	}
	if opts.rootID == "" {
		opts.rootID = t.RootID()
	}

	extractions, err := c.extract(t, opts)
	if err != nil {
		return err
	}

	written := 0
	for _, ext := range extractions {
		if ext.Empty() {
			c.Logger.Debugf("skipping empty part %q", ext.Label)
			continue
		}
		path, err := c.writePart(t, ext, opts.outputDir)
		if err != nil {
			return err
		}
		printSuccess("%s", ext.Label)
		printFile(path)
		printStats(len(ext.IDs), 0, false)
		for _, b := range ext.Boundary {
			c.Logger.Debugf("boundary person %s: %v", b.ID, b.Connections)
		}
		written++
	}
	if written == 0 {
		printInfo("Nothing to write: every part was empty")
	}
	return nil
}

// extract dispatches to the selected partitioner and flattens the result to
// a list of extractions.
func (c *CLI) extract(t *tree.Tree, opts partitionOptions) ([]partition.Extraction, error) {
	dir, ok := traverse.ParseDirection(opts.direction)
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidDirection, "unknown direction %q", opts.direction)
	}

	switch opts.strategy {
	case "gen-range":
		ranges, err := partition.ByGenerationRange(t, opts.rootID, partition.RangeOptions{
			Direction: dir,
			Span:      opts.span,
		})
		if err != nil {
			return nil, wrapPartitionErr(err, opts.rootID)
		}
		out := make([]partition.Extraction, len(ranges))
		for i, r := range ranges {
			out[i] = r.Extraction
		}
		return out, nil

	case "branch":
		kind, ok := partition.ParseBranchKind(opts.branchKind)
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown branch kind %q", opts.branchKind)
		}
		ext, err := partition.Branch(t, partition.BranchOptions{
			Kind:        kind,
			AnchorID:    opts.rootID,
			TargetID:    opts.targetID,
			MaxDepth:    opts.maxDepth,
			SkipSpouses: opts.noSpouses,
		})
		if err != nil {
			return nil, wrapPartitionErr(err, opts.rootID)
		}
		return []partition.Extraction{ext}, nil

	case "collection":
		bridge, ok := partition.ParseBridgeHandling(opts.bridge)
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown bridge handling %q", opts.bridge)
		}
		groups := partition.ByCollection(t, partition.CollectionOptions{
			Bridge:        bridge,
			PriorityOrder: opts.priority,
		})
		out := make([]partition.Extraction, len(groups))
		for i, g := range groups {
			out[i] = partition.Extraction{Label: g.Name, IDs: g.IDs}
		}
		return out, nil

	case "lineage":
		if opts.lineageFrom == "" || opts.lineageTo == "" {
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "lineage needs --from and --to")
		}
		for _, id := range []string{opts.lineageFrom, opts.lineageTo} {
			if !t.Contains(id) {
				return nil, apperrors.New(apperrors.ErrCodeNotFoundPerson, "no person with ID %s", id)
			}
		}
		ext, err := partition.Lineage(t, opts.lineageFrom, opts.lineageTo, partition.LineageOptions{
			IncludeSiblings: opts.siblings,
			SkipSpouses:     opts.noSpouses,
		})
		if err != nil {
			return nil, wrapPartitionErr(err, opts.lineageFrom)
		}
		printKeyValue("Relationship", ext.Relationship)
		return []partition.Extraction{ext.Extraction}, nil

	case "hourglass":
		pair, err := partition.AncestorDescendant(t, opts.rootID, partition.HourglassOptions{
			AncestorDepth:   opts.maxDepth,
			DescendantDepth: opts.maxDepth,
			SkipSpouses:     opts.noSpouses,
		})
		if err != nil {
			return nil, wrapPartitionErr(err, opts.rootID)
		}
		printKeyValue("Total", fmt.Sprintf("%d unique people", pair.Total))
		return []partition.Extraction{pair.Ancestors, pair.Descendants}, nil
	}

	return nil, apperrors.New(apperrors.ErrCodeInvalidStrategy, "unknown partition strategy %q", opts.strategy)
}

// writePart builds the subset tree for one extraction and writes it.
func (c *CLI) writePart(t *tree.Tree, ext partition.Extraction, dir string) (string, error) {
	include := tree.IDSet(ext.IDs)
	root := t.FindBestRoot(ext.IDs, include)
	sub, err := t.Subset(include, root)
	if err != nil {
		return "", fmt.Errorf("build subset %q: %w", ext.Label, err)
	}

	path := filepath.Join(dir, slug(ext.Label)+".tree.json")
	if err := canvas.WriteTreeFile(sub, path); err != nil {
		return "", fmt.Errorf("write part %s: %w", path, err)
	}
	return path, nil
}

// wrapPartitionErr maps core sentinel errors to coded CLI errors.
func wrapPartitionErr(err error, id string) error {
	switch {
	case errors.Is(err, tree.ErrPersonNotFound):
		return apperrors.New(apperrors.ErrCodeNotFoundPerson, "no person with ID %s", id)
	case errors.Is(err, partition.ErrNoPath):
		return apperrors.Wrap(apperrors.ErrCodeNoPath, err, "anchors are disconnected")
	}
	return err
}

// slug turns an extraction label into a safe file name fragment.
func slug(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
