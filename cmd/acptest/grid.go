package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Run the full adoption x contribution rate grid from the analysis file",
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis, err := loadAnalysis()
		if err != nil {
			return err
		}
		if analysis.Grid == nil {
			return fmt.Errorf("%s does not define a grid block", inputFile)
		}

		formatter, err := resolveFormatter()
		if err != nil {
			return err
		}

		result := newEngine().RunGrid(analysis.Census, *analysis.Grid)
		data, err := formatter.FormatGrid(&result)
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
