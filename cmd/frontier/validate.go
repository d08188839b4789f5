package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/frontier/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [maze-file]",
	Short: "Check a maze file for consistency",
	Long: `Loads the maze and reports undeclared neighbors, unknown grid nodes, a missing
start or goal, and nodes unreachable from the start.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("maze")
		if len(args) > 0 {
			path = args[0]
		}

		m, err := cli.LoadMaze(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if unreachable := m.Unreachable(); len(unreachable) > 0 {
			fmt.Fprintf(out, "Warning: unreachable from %s: %s\n", m.Start, strings.Join(unreachable, ", "))
		}
		rows, cols := m.Grid.Dims()
		fmt.Fprintf(out, "Maze %q is valid: %d nodes, %dx%d grid, %s -> %s\n",
			m.Name, m.Graph.Len(), rows, cols, m.Start, m.Goal)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
