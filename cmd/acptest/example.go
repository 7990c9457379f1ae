package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example [path]",
	Short: "Write a starter analysis file with a small example census",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "acp_analysis.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.NewInputParser().WriteExampleFile(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example analysis written to %s\n", path)
		return nil
	},
}
