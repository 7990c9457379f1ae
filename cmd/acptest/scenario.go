package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var debugDetail bool

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Run a single ACP scenario from the analysis file",
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis, err := loadAnalysis()
		if err != nil {
			return err
		}
		if analysis.Scenario == nil {
			return fmt.Errorf("%s does not define a scenario block", inputFile)
		}

		req := *analysis.Scenario
		if debugDetail {
			req.IncludeDebug = true
		}

		formatter, err := resolveFormatter()
		if err != nil {
			return err
		}

		result := newEngine().RunScenario(analysis.Census, req)
		data, err := formatter.FormatScenario(&result)
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	scenarioCmd.Flags().BoolVar(&debugDetail, "debug-detail", false, "include the per-participant debug payload")
}
