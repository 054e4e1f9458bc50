package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/lettercube"
	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

var (
	showMoves    string
	showScramble int
	showLogical  bool
	showLetters  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the cube net",
	Long: `Draw the cube as an unfolded net, optionally after applying moves.

By default the net is drawn in reference orientation (white up, green
front). With --logical it is drawn the way you hold the cube.

Examples:
  lettercube show --letters
  lettercube show --moves "R U R' U'" --logical
  lettercube show --scramble=20
  lettercube show --scramble       # length from config`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showMoves, "moves", "m", "", "Moves to apply before drawing")
	showCmd.Flags().IntVar(&showScramble, "scramble", 0, "Apply N random moves first (bare flag uses quiz.scramble_length)")
	showCmd.Flags().Lookup("scramble").NoOptDefVal = "-1"
	showCmd.Flags().BoolVar(&showLogical, "logical", false, "Draw in the holding orientation")
	showCmd.Flags().BoolVarP(&showLetters, "letters", "l", false, "Print letters on stickers")
}

func runShow(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	s := ws.session

	n := showScramble
	if n < 0 {
		n = cfg.Quiz.ScrambleLength
	}
	if n > 0 {
		fmt.Printf("Scramble: %s\n", lettercube.FormatMoves(s.Scramble(n)))
	}
	if showMoves != "" {
		moves, err := lettercube.ParseMoves(showMoves)
		if err != nil {
			return err
		}
		s.Apply(moves...)
		if simplified := lettercube.SimplifyMoves(moves); len(simplified) < len(moves) {
			fmt.Printf("Moves: %s\n", lettercube.FormatMoves(simplified))
		}
	}

	var cell netCell
	if showLogical {
		colors := s.LogicalColors()
		cell = func(id facelet.ID) (facelet.Color, string) {
			return colors[id.Position()], stickerText(id, s.Label(id), s.Labelable(id))
		}
	} else {
		colors := s.Colors()
		cell = func(id facelet.ID) (facelet.Color, string) {
			logical := s.LogicalID(id)
			return colors[id.Position()], stickerText(logical, s.LabelAt(id), s.Labelable(logical))
		}
	}

	fmt.Println(renderNet(cell))
	if s.IsSolved() {
		fmt.Println(okStyle.Render("solved"))
	}
	return nil
}

// stickerText is what a sticker shows: its letter, a dot for a buffer,
// or the face name on a center.
func stickerText(id facelet.ID, letter string, labelable bool) string {
	switch {
	case !showLetters:
		return ""
	case id.IsCenter():
		return id.Face.String()
	case !labelable:
		return "·"
	default:
		return letter
	}
}
