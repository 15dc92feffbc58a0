package cli

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// generationsCommand creates the generations command.
func (c *CLI) generationsCommand() *cobra.Command {
	var (
		rootID    string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "generations [tree.json]",
		Short: "Show generation numbers relative to the root",
		Long: `Assign and print generation numbers for everyone reachable from the root.

The root is generation 0; with --direction up (the default) ancestors count
upward and descendants negative. Spouses share the generation of the person
they are married to. People with no path to the root are listed separately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerations(args[0], rootID, direction)
		},
	}

	cmd.Flags().StringVar(&rootID, "root", "", "root person ID (default: the tree file's root)")
	cmd.Flags().StringVar(&direction, "direction", cmp.Or(c.Config.Direction, "up"), "generation direction: up (default), down")

	return cmd
}

func (c *CLI) runGenerations(input, rootID, direction string) error {
	dir, ok := traverse.ParseDirection(direction)
	if !ok {
		return apperrors.New(apperrors.ErrCodeInvalidDirection, "unknown direction %q", direction)
	}

	t, err := loadTree(input)
	if err != nil {
		return err
	}
	if rootID == "" {
		rootID = t.RootID()
	}
	if !t.Contains(rootID) {
		return apperrors.New(apperrors.ErrCodeNotFoundPerson, "no person with ID %s", rootID)
	}

	gens := traverse.Generations(t, rootID, dir)

	// Generation rows, oldest first.
	byGen := make(map[int][]string)
	for id, g := range gens {
		byGen[g] = append(byGen[g], id)
	}
	order := slices.Sorted(maps.Keys(byGen))
	if dir == traverse.Up {
		slices.Reverse(order)
	}
	for _, g := range order {
		ids := byGen[g]
		slices.Sort(ids)
		printKeyValue(fmt.Sprintf("Gen %d", g), fmt.Sprintf("%d people", len(ids)))
		for _, name := range displayNames(t, ids) {
			printDetail("%s", name)
		}
	}

	var unreachable []string
	for _, id := range t.IDs() {
		if _, ok := gens[id]; !ok {
			unreachable = append(unreachable, id)
		}
	}
	if len(unreachable) > 0 {
		printNewline()
		printWarning("%d people have no path to %s", len(unreachable), rootID)
		for _, name := range displayNames(t, unreachable) {
			printDetail("%s", name)
		}
	}
	return nil
}
