package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/frontier/internal/cli"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the narrated frontier trace of a search",
	Long:  `Solves the maze and prints every reconstructed step with the frontier snapshot after it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := searchRequest(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		opts := engineOptions(cmd)
		eng, closer, err := cli.NewEngine(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			return err
		}
		defer closer()

		tr, err := eng.Trace(cmd.Context(), req)
		if err != nil {
			return err
		}
		return cli.PrintTrace(cmd.OutOrStdout(), tr, asJSON)
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	addSearchFlags(traceCmd)
	traceCmd.Flags().Bool("json", false, "Print the trace as JSON")
}
