package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/frontier/internal/cli"
	"github.com/aretw0/frontier/pkg/adapters/file"
	"github.com/aretw0/frontier/pkg/domain"
)

var rootCmd = &cobra.Command{
	Use:   "frontier",
	Short: "Frontier replays maze searches step by step",
	Long: `Frontier solves a maze with BFS, DFS or A*, reconstructs how the frontier
evolved to produce the explored order, and plays the result back as a narrated animation.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("maze", "", "Maze file (YAML or JSON); empty selects the built-in classroom maze")
	rootCmd.PersistentFlags().String("solver-url", "", "Base URL of a remote solver service (POST {url}/solve)")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for sessions (host:port)")
	rootCmd.PersistentFlags().String("store-dir", "", "Directory for file-backed sessions")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

func engineOptions(cmd *cobra.Command) cli.EngineOptions {
	mazePath, _ := cmd.Flags().GetString("maze")
	solverURL, _ := cmd.Flags().GetString("solver-url")
	redisAddr, _ := cmd.Flags().GetString("redis-addr")
	storeDir, _ := cmd.Flags().GetString("store-dir")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.EngineOptions{
		MazePath:  mazePath,
		SolverURL: solverURL,
		RedisAddr: redisAddr,
		StoreDir:  storeDir,
		Debug:     debug,
	}
}

// addSearchFlags registers the flags shared by commands that run a search.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("algorithm", "a", string(domain.AlgorithmBFS), "Search algorithm: bfs, dfs or astar")
	cmd.Flags().String("start", "", "Start node (default: maze start)")
	cmd.Flags().String("goal", "", "Goal node (default: maze goal)")
}

func searchRequest(cmd *cobra.Command) (domain.SolveRequest, error) {
	name, _ := cmd.Flags().GetString("algorithm")
	alg, err := domain.ParseAlgorithm(name)
	if err != nil {
		return domain.SolveRequest{}, err
	}
	start, _ := cmd.Flags().GetString("start")
	goal, _ := cmd.Flags().GetString("goal")
	return domain.SolveRequest{Algorithm: alg, Start: start, Goal: goal}, nil
}

// sessionStoreOptions makes the session commands default to the file store.
func sessionStoreOptions(cmd *cobra.Command) cli.EngineOptions {
	opts := engineOptions(cmd)
	if opts.RedisAddr == "" && opts.StoreDir == "" {
		opts.StoreDir = file.DefaultPath
	}
	return opts
}
