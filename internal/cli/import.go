package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kintree/pkg/canvas"
	apperrors "github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/gedcom"
	"github.com/matzehuels/kintree/pkg/tree"
)

// importCommand creates the import command for converting GEDCOM files.
func (c *CLI) importCommand() *cobra.Command {
	var (
		output string
		rootID string
	)

	cmd := &cobra.Command{
		Use:   "import [family.ged]",
		Short: "Import a GEDCOM file into a tree file",
		Long: `Import a GEDCOM 5.5 file into a kintree tree file.

Only the core records are read: individuals (name, sex, birth and death
dates) and families (husband, wife, children). Malformed lines are skipped.

The tree root defaults to the first individual; pass --root to pick a
different person by xref ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImport(args[0], output, rootID)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.tree.json)")
	cmd.Flags().StringVar(&rootID, "root", "", "root person xref ID (default: first individual)")

	return cmd
}

func (c *CLI) runImport(input, output, rootID string) error {
	prog := newProgress(c.Logger)

	records, err := gedcom.ParseFile(input)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "import %s", input)
	}
	if len(records) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "%s contains no individuals", input)
	}

	tf := canvas.TreeFile{People: records, RootID: rootID}
	if tf.RootID == "" {
		tf.RootID = records[0].ID
	}
	t, err := canvas.ToTree(tf)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeNotFoundPerson, err, "root %s", tf.RootID)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".tree.json"
	}
	if err := canvas.WriteTreeFile(t, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	prog.done(fmt.Sprintf("Imported %d people", t.Size()))
	printSuccess("Import complete")
	printFile(outputPath)
	printStats(t.Size(), len(t.Edges()), false)
	printNewline()
	printNextStep("Lay out", "kintree layout "+outputPath)

	return nil
}

// loadTree reads a tree file with CLI-flavored errors.
func loadTree(path string) (*tree.Tree, error) {
	t, err := canvas.ReadTreeFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "load tree %s", path)
	}
	return t, nil
}
