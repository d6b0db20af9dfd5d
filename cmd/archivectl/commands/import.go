package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/models"
	"github.com/spf13/cobra"
)

var (
	// Import flags
	importFile string
	dryRun     bool
)

// importCmd loads a legacy characters.json export
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a legacy characters.json export",
	Long: `Convert every record of a legacy JSON export (an object keyed by slug)
and insert the characters with their stats in one transaction.

Malformed lore markup is repaired and every repair is reported.

Examples:
  archivectl import --file characters.json
  archivectl import --file characters.json --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if importFile == "" {
			return errors.New("--file is required")
		}
		archive, err := readLegacyArchive(importFile)
		if err != nil {
			return err
		}

		log := newLogger()
		importer := service.NewImportService(nil, log)
		if !dryRun {
			tk, err := openToolkit(cmd.Context(), log)
			if err != nil {
				return err
			}
			defer tk.Close()
			importer = tk.importer
		}

		report, err := importer.Import(log.WithContext(cmd.Context()), archive, dryRun)
		if err != nil {
			return err
		}
		return printReport(cmd.OutOrStdout(), report)
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to the legacy JSON export")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and report without writing")

	rootCmd.AddCommand(importCmd)
}

func readLegacyArchive(path string) (models.LegacyArchive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening legacy export: %w", err)
	}
	defer f.Close()

	var archive models.LegacyArchive
	if err = json.NewDecoder(f).Decode(&archive); err != nil {
		return nil, fmt.Errorf("decoding legacy export: %w", err)
	}
	return archive, nil
}

func printReport(w io.Writer, report models.ImportReport) error {
	if jsonOutput {
		return json.NewEncoder(w).Encode(report)
	}

	mode := "imported"
	if report.DryRun {
		mode = "dry run"
	}
	fmt.Fprintf(w, "%s: %d record(s) found, %d written\n", mode, report.Total, report.Written)
	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	return nil
}
