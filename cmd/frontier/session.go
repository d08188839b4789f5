package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/frontier/internal/cli"
	"github.com/aretw0/frontier/internal/logging"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage persistent sessions",
	Long:  `List, inspect, and remove sessions stored in .frontier/sessions (or Redis with --redis-addr).`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closer, err := cli.NewEngine(sessionStoreOptions(cmd), logging.NewNop())
		if err != nil {
			return err
		}
		defer closer()

		sessions, err := eng.Sessions().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("error listing sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions found.")
			return nil
		}

		fmt.Fprintln(out, "Sessions:")
		for _, s := range sessions {
			fmt.Fprintln(out, "- "+s)
		}
		return nil
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Inspect a session and its trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]
		eng, closer, err := cli.NewEngine(sessionStoreOptions(cmd), logging.NewNop())
		if err != nil {
			return err
		}
		defer closer()

		s, err := eng.Session(cmd.Context(), sessionID)
		if err != nil {
			return fmt.Errorf("error loading session '%s': %w", sessionID, err)
		}

		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling session: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <session-id>...",
	Short: "Remove one or more sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closer, err := cli.NewEngine(sessionStoreOptions(cmd), logging.NewNop())
		if err != nil {
			return err
		}
		defer closer()

		var errs []error
		for _, sessionID := range args {
			if err := eng.Delete(cmd.Context(), sessionID); err != nil {
				errs = append(errs, fmt.Errorf("error removing '%s': %w", sessionID, err))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session '%s'\n", sessionID)
		}
		return errors.Join(errs...)
	},
}

var sessionSolveCmd = &cobra.Command{
	Use:   "solve <session-id>",
	Short: "Solve the maze and store the trace in a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := searchRequest(cmd)
		if err != nil {
			return err
		}
		eng, closer, err := cli.NewEngine(sessionStoreOptions(cmd), logging.NewNop())
		if err != nil {
			return err
		}
		defer closer()

		s, err := eng.SolveSession(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session '%s': %s explored %d nodes, path of %d\n",
			s.ID, s.Algorithm, len(s.Trace.Explored), len(s.Trace.Path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionSolveCmd)
	addSearchFlags(sessionSolveCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)
}
