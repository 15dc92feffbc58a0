package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/kinship"
	"github.com/matzehuels/kintree/pkg/tree"
	"github.com/matzehuels/kintree/pkg/tree/traverse"
)

// relateCommand creates the relate command for naming relationships.
func (c *CLI) relateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relate [tree.json] [person] [relative]",
		Short: "Name the relationship between two people",
		Long: `Name the english relationship between two people in a tree file.

The label names what the second person is to the first: with IDs "me" and
"grandpa" the answer is "Grandfather". Spouses are recognized before the
kinship path search; disconnected people report no relationship.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRelate(args[0], args[1], args[2])
		},
	}
	return cmd
}

func (c *CLI) runRelate(input, anchorID, targetID string) error {
	for _, id := range []string{anchorID, targetID} {
		if err := apperrors.ValidatePersonID(id); err != nil {
			return err
		}
	}

	t, err := loadTree(input)
	if err != nil {
		return err
	}
	for _, id := range []string{anchorID, targetID} {
		if !t.Contains(id) {
			return apperrors.New(apperrors.ErrCodeNotFoundPerson, "no person with ID %s", id)
		}
	}

	label, ok := kinship.Relationship(t, anchorID, targetID)
	if !ok {
		printWarning("No kinship path between %s and %s", anchorID, targetID)
		return apperrors.New(apperrors.ErrCodeNoPath, "no path between %s and %s", anchorID, targetID)
	}

	printKeyValue("Relationship", label)
	if path := traverse.Path(t, anchorID, targetID); path != nil {
		printKeyValue("Path", strings.Join(displayNames(t, path), " → "))
		printKeyValue("Steps", fmt.Sprintf("%d", len(path)-1))
	}
	return nil
}

// displayNames maps IDs to names, falling back to the ID.
func displayNames(t *tree.Tree, ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id
		if p, ok := t.Person(id); ok && p.Name != "" {
			out[i] = p.Name
		}
	}
	return out
}
