package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/lettercube/internal/facelet"
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// stickerColors are the terminal colors for each sticker color.
var stickerColors = map[facelet.Color]lipgloss.Color{
	facelet.White:  lipgloss.Color("255"),
	facelet.Yellow: lipgloss.Color("226"),
	facelet.Green:  lipgloss.Color("34"),
	facelet.Blue:   lipgloss.Color("27"),
	facelet.Red:    lipgloss.Color("160"),
	facelet.Orange: lipgloss.Color("208"),
}

// sticker renders one cell with text on the sticker's color.
func sticker(c facelet.Color, text string) string {
	if text == "" {
		text = " "
	}
	return lipgloss.NewStyle().
		Background(stickerColors[c]).
		Foreground(lipgloss.Color("0")).
		Width(3).
		Align(lipgloss.Center).
		Render(text)
}

// swatch is a blank sticker, used in prompts.
func swatch(c facelet.Color) string {
	return sticker(c, "")
}

// netCell supplies the color and text for one position of the net.
type netCell func(id facelet.ID) (facelet.Color, string)

// renderNet draws the unfolded cube: U above, L F R B across, D below.
func renderNet(cell netCell) string {
	face := func(f facelet.Face) string {
		rows := make([]string, 3)
		for r := 0; r < 3; r++ {
			cells := make([]string, 3)
			for c := 0; c < 3; c++ {
				id := facelet.MustID(f, r*3+c)
				color, text := cell(id)
				cells[c] = sticker(color, text)
			}
			rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		}
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	up := face(facelet.U)
	pad := strings.Repeat(" ", lipgloss.Width(up)+1)
	belt := lipgloss.JoinHorizontal(lipgloss.Top,
		face(facelet.L), " ", face(facelet.F), " ", face(facelet.R), " ", face(facelet.B))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, pad, up),
		belt,
		lipgloss.JoinHorizontal(lipgloss.Top, pad, face(facelet.D)),
	)
}
