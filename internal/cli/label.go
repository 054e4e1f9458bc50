package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

var labelMissing bool

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Manage sticker letters",
	Long: `Assign, inspect and remove letters. Sticker IDs are logical positions
in the holding orientation, written as face letter plus index 0-8,
e.g. U1, F7, R3.`,
}

var labelSetCmd = &cobra.Command{
	Use:   "set <sticker> <letter>",
	Short: "Assign a letter to a sticker",
	Args:  cobra.ExactArgs(2),
	RunE:  runLabelSet,
}

var labelGetCmd = &cobra.Command{
	Use:   "get <sticker>",
	Short: "Print a sticker's letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runLabelGet,
}

var labelClearCmd = &cobra.Command{
	Use:   "clear <sticker>",
	Short: "Remove a sticker's letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runLabelClear,
}

var labelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assigned letters",
	RunE:  runLabelList,
}

var labelResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove every letter",
	RunE:  runLabelReset,
}

func init() {
	rootCmd.AddCommand(labelCmd)
	labelCmd.AddCommand(labelSetCmd, labelGetCmd, labelClearCmd, labelListCmd, labelResetCmd)
	labelListCmd.Flags().BoolVar(&labelMissing, "missing", false, "List stickers still without a letter")
}

func runLabelSet(cmd *cobra.Command, args []string) error {
	id, err := facelet.ParseID(args[0])
	if err != nil {
		return err
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.session.SetLabel(id, args[1]); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", id, ws.session.Label(id))
	return nil
}

func runLabelGet(cmd *cobra.Command, args []string) error {
	id, err := facelet.ParseID(args[0])
	if err != nil {
		return err
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	switch letter := ws.session.Label(id); {
	case !ws.session.Labelable(id):
		fmt.Printf("%s is not labelable (center or buffer)\n", id)
	case letter == "":
		fmt.Printf("%s has no letter\n", id)
	default:
		fmt.Println(letter)
	}
	return nil
}

func runLabelClear(cmd *cobra.Command, args []string) error {
	id, err := facelet.ParseID(args[0])
	if err != nil {
		return err
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	return ws.session.ClearLabel(id)
}

func runLabelList(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	s := ws.session

	if labelMissing {
		missing := s.Missing()
		if len(missing) == 0 {
			fmt.Println(okStyle.Render("Every sticker has a letter."))
			return nil
		}
		names := make([]string, len(missing))
		for i, id := range missing {
			names[i] = id.String()
		}
		fmt.Printf("%d missing: %s\n", len(missing), strings.Join(names, " "))
		return nil
	}

	ids := s.LabelIDs()
	if len(ids) == 0 {
		fmt.Println("No letters assigned.")
		fmt.Println("  (Use 'lettercube label set <sticker> <letter>' to add one)")
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Letters (%s)", s.Scheme())))
	for _, id := range ids {
		fmt.Printf("  %-3s %s\n", id, s.Label(id))
	}
	return nil
}

func runLabelReset(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.session.ResetLabels(); err != nil {
		return err
	}
	fmt.Println("All letters removed.")
	return nil
}
