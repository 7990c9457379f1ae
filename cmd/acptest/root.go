package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/calculation"
	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/config"
	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/output"
)

var (
	inputFile  string
	formatName string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "acptest",
	Short: "IRS ACP nondiscrimination testing for mega-backdoor Roth programs",
	Long: `acptest evaluates whether a proposed mega-backdoor Roth contribution
program passes IRS ACP nondiscrimination testing, for single scenarios and
for grids of adoption and contribution rates.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "analysis YAML file (census + request)")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "console", "output format (console, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine detail to stderr")

	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(exampleCmd)
}

// loadAnalysis reads and validates the analysis file named by --input.
func loadAnalysis() (*config.Analysis, error) {
	if inputFile == "" {
		return nil, fmt.Errorf("--input is required (try 'acptest example' to generate one)")
	}
	return config.NewInputParser().LoadFromFile(inputFile)
}

// newEngine builds the engine, wiring a stderr logger when --verbose is set.
func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if verbose {
		engine.SetLogger(calculation.WriterLogger{W: os.Stderr})
	}
	return engine
}

// resolveFormatter maps --format to a formatter.
func resolveFormatter() (output.Formatter, error) {
	f := output.GetFormatterByName(formatName)
	if f == nil {
		return nil, fmt.Errorf("unknown format %q (available: %v)", formatName, output.AvailableFormatterNames())
	}
	return f, nil
}
