package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"courseplanner/internal/model"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Build and rank conflict-free schedules from a feed export",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		optionsFile, _ := cmd.Flags().GetString("options")
		outFile, _ := cmd.Flags().GetString("out")

		records, err := model.RecordsFromJson(input)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		options := model.DefaultOptions()
		if optionsFile != "" {
			options, err = model.OptionsFromJson(optionsFile)
			if err != nil {
				return fmt.Errorf("failed to load options: %w", err)
			}
		}

		optimizer := model.NewOptimizer()
		output, err := optimizer.Optimize(records, options)
		if err != nil {
			return err
		}

		outputJson, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize output: %w", err)
		}

		if outFile == "" {
			fmt.Println(string(outputJson))
			return nil
		}
		if err := os.WriteFile(outFile, outputJson, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Printf("Wrote %d schedules to %s\n", len(output), outFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().StringP("input", "i", "", "Path to the raw registration-feed JSON")
	optimizeCmd.Flags().StringP("options", "c", "", "Path to an options JSON file (defaults apply if omitted)")
	optimizeCmd.Flags().StringP("out", "o", "", "Path to write the ranked schedules JSON (stdout if omitted)")
	optimizeCmd.MarkFlagRequired("input")
}
