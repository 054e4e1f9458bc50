package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/lettercube/internal/pieces"
)

var piecesKind string

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "List edges and corners with their letters",
	Long: `List every edge and corner piece. Each sticker is shown with its color,
its logical position and its letter.`,
	RunE: runPieces,
}

func init() {
	rootCmd.AddCommand(piecesCmd)
	piecesCmd.Flags().StringVarP(&piecesKind, "kind", "k", "", "Only list edges or corners")
}

func runPieces(cmd *cobra.Command, args []string) error {
	kinds := []pieces.Kind{pieces.Edge, pieces.Corner}
	if piecesKind != "" {
		k, err := pieces.ParseKind(piecesKind)
		if err != nil {
			return err
		}
		kinds = []pieces.Kind{k}
	}

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	s := ws.session
	catalog := s.Pieces()

	for i, kind := range kinds {
		if i > 0 {
			fmt.Println()
		}
		list := catalog.Kind(kind)
		fmt.Println(titleStyle.Render(fmt.Sprintf("%ss (%d)", strings.ToUpper(kind.String()[:1])+kind.String()[1:], len(list))))

		for _, p := range list {
			letters := s.PieceLabels(p)
			var b strings.Builder
			for j, id := range p.Facelets {
				logical := s.LogicalID(id)
				text := letters[j]
				if !s.Labelable(logical) {
					text = "·"
				}
				fmt.Fprintf(&b, "%s %-3s %-2s  ", swatch(s.ColorAtPhysical(id)), logical, text)
			}
			fmt.Printf("  %s\n", strings.TrimRight(b.String(), " "))
		}
	}
	return nil
}
