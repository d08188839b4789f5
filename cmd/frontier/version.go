package main

import (
	"fmt"

	"github.com/aretw0/frontier"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of frontier",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "frontier version %s\n", frontier.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
