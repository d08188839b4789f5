package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/frontier/internal/cli"
	"github.com/aretw0/frontier/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the maze graph as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart of the maze. With --overlay the explored nodes and
the path of a search are highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, _ := cmd.Flags().GetBool("overlay")

		opts := engineOptions(cmd)
		eng, closer, err := cli.NewEngine(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			return err
		}
		defer closer()

		var ov *graph.GraphOverlay
		if overlay {
			req, err := searchRequest(cmd)
			if err != nil {
				return err
			}
			tr, err := eng.Trace(cmd.Context(), req)
			if err != nil {
				return err
			}
			ov = graph.OverlayFromTrace(tr)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(eng.Maze(), ov))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addSearchFlags(graphCmd)
	graphCmd.Flags().Bool("overlay", false, "Highlight the explored nodes and the path of a search")
}
