package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/lettercube/internal/storage"
)

var statsTop int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz accuracy per target",
	Long:  `Summarize recorded quiz attempts per sticker or piece, weakest first.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVarP(&statsTop, "top", "n", 20, "Show only the N weakest targets (0 for all)")
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := storage.NewQuizAttemptRepository(db).Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No quiz attempts recorded yet.")
		fmt.Println("  (Use 'lettercube quiz' to start drilling)")
		return nil
	}

	if statsTop > 0 && len(stats) > statsTop {
		stats = stats[:statsTop]
	}

	fmt.Println(titleStyle.Render("Weakest targets"))
	fmt.Printf("  %-7s %-12s %8s %8s %9s\n", "KIND", "TARGET", "ATTEMPTS", "PASSED", "ACCURACY")
	for _, s := range stats {
		line := fmt.Sprintf("  %-7s %-12s %8d %8d %8.1f%%", s.Kind, s.Target, s.Attempts, s.Passed, s.Accuracy()*100)
		switch {
		case s.Accuracy() >= 0.9:
			fmt.Println(okStyle.Render(line))
		case s.Accuracy() < 0.5:
			fmt.Println(errorStyle.Render(line))
		default:
			fmt.Println(line)
		}
	}
	return nil
}
