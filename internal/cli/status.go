package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/lettercube/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database, orientation and lettering progress",
	Long:  `Display the database location, the holding orientation, the active scheme, how many stickers have letters and the quiz history size.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	s := ws.session

	fmt.Println(titleStyle.Render("lettercube status"))
	fmt.Println()

	// Database info
	fmt.Printf("Database: %s\n", ws.db.Path())
	if v, err := ws.db.CurrentVersion(); err == nil {
		fmt.Printf("Schema version: %d\n", v)
	}
	fmt.Printf("State file: %s\n", ws.state.Path())

	fmt.Println()

	// Orientation
	front, top := s.Orientation()
	fmt.Printf("Orientation: front %s, top %s\n", front.Name(), top.Name())
	if !ws.state.Completed() {
		fmt.Println(statusStyle.Render("  (Use 'lettercube orient --front <color> --top <color>' to choose)"))
	}
	fmt.Printf("Scheme: %s (edge buffer %s, corner buffer %s)\n",
		s.Scheme(), s.Scheme().EdgeBuffer, s.Scheme().CornerBuffer)

	fmt.Println()

	// Letters
	total := len(s.LabelIDs()) + len(s.Missing())
	fmt.Printf("Letters: %d/%d\n", len(s.LabelIDs()), total)
	if s.Complete() {
		fmt.Println(okStyle.Render("  Lettering complete"))
	}
	if updated, err := storage.NewLabelRepository(ws.db).LastUpdated(); err == nil && updated != nil {
		fmt.Printf("Last change: %s\n", updated.Local().Format(time.RFC3339))
	}

	// Quiz history
	if count, err := storage.NewQuizAttemptRepository(ws.db).Count(); err == nil {
		fmt.Printf("Quiz attempts: %d\n", count)
	}

	return nil
}
