package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
	"github.com/SeamusWaldron/lettercube/internal/orientation"
	"github.com/SeamusWaldron/lettercube/internal/state"
)

var (
	orientFront string
	orientTop   string
	orientReset bool
	orientList  bool
)

var orientCmd = &cobra.Command{
	Use:   "orient",
	Short: "Show or change the holding orientation",
	Long: `Show or change which colors face you and face up while you drill.

Letters belong to logical positions, so after re-orienting, the letter you
assigned to the front-top sticker stays on whatever sticker is now in
front-top.

Examples:
  lettercube orient                         # show current orientation
  lettercube orient --front red --top white
  lettercube orient --reset                 # back to green front, white top
  lettercube orient --list                  # all 24 valid pairs`,
	RunE: runOrient,
}

func init() {
	rootCmd.AddCommand(orientCmd)
	orientCmd.Flags().StringVar(&orientFront, "front", "", "Color facing you")
	orientCmd.Flags().StringVar(&orientTop, "top", "", "Color facing up")
	orientCmd.Flags().BoolVar(&orientReset, "reset", false, "Restore the reference orientation")
	orientCmd.Flags().BoolVar(&orientList, "list", false, "List every valid front/top pair")
}

func runOrient(cmd *cobra.Command, args []string) error {
	if orientList {
		for _, sel := range orientation.All() {
			fmt.Printf("  front %-6s  top %s\n", sel.Front.Color().Name(), sel.Top.Color().Name())
		}
		return nil
	}

	stateFile, err := state.NewDefaultStateFile()
	if err != nil {
		return errors.Wrap(err, "failed to load state")
	}

	switch {
	case orientReset:
		if err := stateFile.ClearOrientation(); err != nil {
			return err
		}
	case orientFront != "" || orientTop != "":
		if orientFront == "" || orientTop == "" {
			return errors.New("both --front and --top are required")
		}
		front, err := facelet.ParseColor(orientFront)
		if err != nil {
			return err
		}
		top, err := facelet.ParseColor(orientTop)
		if err != nil {
			return err
		}
		// Reject impossible pairs before they reach the state file.
		if _, err := orientation.FromColors(front, top); err != nil {
			return err
		}
		if err := stateFile.SetOrientation(front, top); err != nil {
			return err
		}
	}

	front, top, _ := stateFile.Orientation()
	mapping, err := orientation.FromColors(front, top)
	if err != nil {
		return err
	}

	fmt.Printf("Front: %s\n", front.Name())
	fmt.Printf("Top:   %s\n", top.Name())
	if mapping.IsIdentity() {
		fmt.Println(statusStyle.Render("(reference orientation)"))
		return nil
	}

	fmt.Println()
	fmt.Println("Logical face  Physical color  Grid turns")
	for _, f := range facelet.Faces {
		physical := mapping.PhysicalFace(f)
		fmt.Printf("  %s           %-14s  %d\n", f, physical.Color().Name(), mapping.Steps(physical))
	}
	return nil
}
