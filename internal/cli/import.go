package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var importLegacy bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace letters from a JSON file",
	Long: `Replace every letter with the contents of a JSON object mapping sticker
IDs to letters, as written by 'lettercube export'.

With --legacy the keys are read as reference stickers (white up, green
front) and converted to logical positions using the current orientation.
Centers and buffers in the file are skipped. A malformed file leaves the
current letters untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importLegacy, "legacy", false, "Keys are reference stickers, not logical positions")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	if importLegacy {
		err = ws.session.ImportLegacy(data)
	} else {
		err = ws.session.Import(data)
	}
	if err != nil {
		return errors.Wrap(err, "import failed")
	}

	fmt.Printf("Imported %d letters (%d still missing)\n", len(ws.session.LabelIDs()), len(ws.session.Missing()))
	return nil
}
