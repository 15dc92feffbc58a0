package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kintree/pkg/cache"
	"github.com/matzehuels/kintree/pkg/canvas"
	apperrors "github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/tree"
)

// layoutCommand creates the layout command for computing canvas positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		strategy string
		noCache  bool
	)
	opts := c.Config.layoutOptions()

	cmd := &cobra.Command{
		Use:   "layout [tree.json]",
		Short: "Compute canvas positions for a tree",
		Long: `Compute canvas positions for a tree file.

The layout command takes a tree.json file (produced by 'import' or
'partition') and places every person on an infinite canvas. The output is a
canvas.json file with one node per person and one edge per parent, spouse,
or custom link, ready for 'render'.

Strategies: hierarchical, family-chart, timeline, hourglass. When no
strategy is given, family-chart is used for trees up to the size threshold
and hierarchical above it.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, strategy, opts, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.canvas.json)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", c.Config.Strategy, "layout strategy (default: by tree size)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Float64Var(&opts.NodeWidth, "node-width", opts.NodeWidth, "node box width")
	cmd.Flags().Float64Var(&opts.NodeHeight, "node-height", opts.NodeHeight, "node box height")
	cmd.Flags().Float64Var(&opts.Gap, "gap", opts.Gap, "minimum gap between boxes")

	return cmd
}

// runLayout loads the tree, computes or recalls the canvas, and writes it.
func (c *CLI) runLayout(ctx context.Context, input, output, strategy string, opts layout.Options, noCache bool) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read %s", input)
	}
	t, err := canvas.ReadTree(bytes.NewReader(raw))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "load tree %s", input)
	}

	s := layout.ForTree(t, opts)
	if strategy != "" {
		var ok bool
		if s, ok = layout.Parse(strategy); !ok {
			return apperrors.New(apperrors.ErrCodeInvalidStrategy, "unknown layout strategy %q", strategy)
		}
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", s.Name()))
	spinner.Start()

	data, cacheHit, err := c.canvasBytes(ctx, store, raw, t, s, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		base = strings.TrimSuffix(base, ".tree")
		outputPath = base + ".canvas.json"
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(t.Size(), len(t.Edges()), cacheHit)
	printNewline()
	printNextStep("Render", "kintree render "+input)

	return nil
}

// canvasBytes returns the marshaled canvas for the tree, recalling a cached
// result when the tree bytes, strategy, and options all match.
func (c *CLI) canvasBytes(ctx context.Context, store cache.Cache, raw []byte, t *tree.Tree, s layout.Strategy, opts layout.Options) ([]byte, bool, error) {
	key := cache.Key("layout", cache.Hash(raw), s.Name(), opts)

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		c.Logger.Debug("layout cache hit", "key", key)
		return data, true, nil
	}

	result, err := layout.Compute(t, s, opts)
	if err != nil {
		return nil, false, fmt.Errorf("compute layout: %w", err)
	}
	for _, id := range result.Unplaced {
		c.Logger.Warnf("could not place %s", id)
	}

	data, err := canvas.MarshalCanvas(canvas.FromLayout(t, result, opts))
	if err != nil {
		return nil, false, fmt.Errorf("encode canvas: %w", err)
	}
	if err := store.Set(ctx, key, data, 0); err != nil {
		c.Logger.Debug("layout cache write failed", "err", err)
	}
	return data, false, nil
}
