package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"courseplanner/internal/exporter"
	"courseplanner/internal/model"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export ranked schedules to .ics calendar files",
	Long: `Export each schedule of an optimizer output file as a .ics calendar.
The term date range is taken from --term-start/--term-end, or derived from
the raw feed metadata when --raw-data is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		termStartStr, _ := cmd.Flags().GetString("term-start")
		termEndStr, _ := cmd.Flags().GetString("term-end")
		timezone, _ := cmd.Flags().GetString("timezone")
		rawData, _ := cmd.Flags().GetString("raw-data")

		outputJson, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("failed to read schedules file: %w", err)
		}
		var output model.Output
		if err := json.Unmarshal(outputJson, &output); err != nil {
			return fmt.Errorf("failed to parse schedules file: %w", err)
		}

		metadata := map[string]exporter.SectionMetadata{}
		if rawData != "" {
			records, err := model.RecordsFromJson(rawData)
			if err != nil {
				return fmt.Errorf("failed to load raw feed: %w", err)
			}
			metadata = exporter.CollectSectionMetadata(records)
		}

		termStart, termEnd, err := resolveTermBounds(termStartStr, termEndStr, output, metadata)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		for name, entry := range output {
			path := filepath.Join(outputDir, exporter.CalendarFileName(name))
			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create calendar file: %w", err)
			}
			if err := exporter.GenerateICS(name, entry, termStart, termEnd, timezone, metadata, file); err != nil {
				file.Close()
				return fmt.Errorf("failed to generate calendar for %s: %w", name, err)
			}
			file.Close()
			fmt.Printf("Wrote %s\n", path)
		}

		return nil
	},
}

func resolveTermBounds(
	termStartStr, termEndStr string,
	output model.Output,
	metadata map[string]exporter.SectionMetadata,
) (time.Time, time.Time, error) {
	var termStart, termEnd time.Time
	var err error

	if termStartStr != "" {
		if termStart, err = time.Parse(time.DateOnly, termStartStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid term start: %w", err)
		}
	}
	if termEndStr != "" {
		if termEnd, err = time.Parse(time.DateOnly, termEndStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid term end: %w", err)
		}
	}

	if termStart.IsZero() || termEnd.IsZero() {
		derivedStart, derivedEnd, ok := exporter.DeriveTermBounds(output, metadata)
		if termStart.IsZero() && ok {
			termStart = derivedStart
		}
		if termEnd.IsZero() && ok {
			termEnd = derivedEnd
		}
	}

	if termStart.IsZero() || termEnd.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("unable to determine the term range; provide --term-start and --term-end")
	}
	return termStart, termEnd, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("input", "i", "", "Path to the optimizer output JSON")
	exportCmd.Flags().StringP("output-dir", "o", "ics_out", "Directory to write .ics files")
	exportCmd.Flags().String("term-start", "", "ISO date (YYYY-MM-DD) of the first week of classes")
	exportCmd.Flags().String("term-end", "", "ISO date (YYYY-MM-DD) of the last week of classes")
	exportCmd.Flags().StringP("timezone", "t", "America/New_York", "Timezone identifier for calendar events")
	exportCmd.Flags().StringP("raw-data", "r", "", "Optional raw feed JSON to derive term dates and locations")
	exportCmd.MarkFlagRequired("input")
}
