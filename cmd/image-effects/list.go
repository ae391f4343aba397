package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effects accepted by apply",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, e := range effectTable {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", e.name, e.usage)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
