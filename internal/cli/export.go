package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/lettercube/internal/storage"
)

var (
	exportFormat string
	exportOutput string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export letters as JSON",
	Long: `Export every letter as a JSON object keyed by logical sticker ID, with
sorted keys. The output can be read back with 'lettercube import'.

Examples:
  lettercube export
  lettercube export -o letters.json
  lettercube export attempts --format json`,
	RunE: runExportLabels,
}

var exportAttemptsCmd = &cobra.Command{
	Use:   "attempts",
	Short: "Export quiz history",
	Long:  `Export recorded quiz attempts, most recent first, in text or JSON format.`,
	RunE:  runExportAttempts,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	exportCmd.AddCommand(exportAttemptsCmd)
	exportAttemptsCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportAttemptsCmd.Flags().IntVar(&exportLimit, "limit", 1000, "Maximum attempts to export")
}

func runExportLabels(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	data, err := ws.session.Export()
	if err != nil {
		return errors.Wrap(err, "failed to export letters")
	}

	return writeOutput(strings.TrimRight(string(data), "\n"),
		fmt.Sprintf("Exported %d letters", len(ws.session.LabelIDs())))
}

func runExportAttempts(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	attempts, err := storage.NewQuizAttemptRepository(db).List(exportLimit)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		return errors.New("no quiz attempts recorded")
	}

	// Format output
	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		lines := make([]string, 0, len(attempts))
		for _, a := range attempts {
			lines = append(lines, fmt.Sprintf("%s  %-7s %-12s %d/%d",
				a.CreatedAt.Format(time.RFC3339), a.Kind, a.Target, a.Correct, a.Total))
		}
		output = strings.Join(lines, "\n")

	case "json":
		type AttemptJSON struct {
			AttemptID string `json:"attempt_id"`
			Kind      string `json:"kind"`
			Target    string `json:"target"`
			Correct   int    `json:"correct"`
			Total     int    `json:"total"`
			CreatedAt string `json:"created_at"`
		}

		attemptsJSON := make([]AttemptJSON, 0, len(attempts))
		for _, a := range attempts {
			attemptsJSON = append(attemptsJSON, AttemptJSON{
				AttemptID: a.AttemptID,
				Kind:      a.Kind,
				Target:    a.Target,
				Correct:   a.Correct,
				Total:     a.Total,
				CreatedAt: a.CreatedAt.Format(time.RFC3339),
			})
		}

		data, err := json.MarshalIndent(attemptsJSON, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal JSON")
		}
		output = string(data)

	default:
		return errors.Newf("unknown format: %s (use txt or json)", exportFormat)
	}

	return writeOutput(output, fmt.Sprintf("Exported %d attempts", len(attempts)))
}

// writeOutput prints output, or writes it to --output and prints summary.
func writeOutput(output, summary string) error {
	if exportOutput == "" {
		fmt.Println(output)
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return errors.Wrap(err, "failed to write output file")
	}

	fmt.Printf("%s to %s\n", summary, exportOutput)
	return nil
}
