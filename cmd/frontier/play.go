package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/frontier/internal/cli"
	"github.com/aretw0/frontier/internal/presentation/tui"
	"github.com/aretw0/frontier/pkg/playback"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Animate a search in the terminal",
	Long: `Solves the maze and plays the search back tick by tick: explored nodes first,
then the robot moving along the path. Ctrl+C stops and clears the playback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := searchRequest(cmd)
		if err != nil {
			return err
		}
		speed, _ := cmd.Flags().GetInt("speed")
		plain, _ := cmd.Flags().GetBool("plain")

		opts := engineOptions(cmd)
		eng, closer, err := cli.NewEngine(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			return err
		}
		defer closer()

		out := cmd.OutOrStdout()
		interactive := !plain && term.IsTerminal(int(os.Stdout.Fd()))

		rendererOpts := []tui.Option{tui.WithProfile(termenv.Ascii)}
		if interactive {
			profile := termenv.ColorProfile()
			tui.PrintBanner(out, profile)
			rendererOpts = []tui.Option{tui.WithProfile(profile), tui.WithClearScreen(true)}
			if md, err := tui.NewMarkdownRenderer(); err == nil {
				rendererOpts = append(rendererOpts, tui.WithMarkdown(md))
			}
		}
		renderer := tui.NewRenderer(out, eng.Maze(), rendererOpts...)

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		if err := cli.Play(ctx, eng, cli.PlaySessionID, req, renderer, playback.Interval(speed)); err != nil {
			return err
		}
		if sig := ctx.Signal(); sig != nil {
			fmt.Fprintf(out, "\nPlayback stopped (%v)\n", sig)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	addSearchFlags(playCmd)
	playCmd.Flags().Int("speed", 50, "Playback speed: tick interval is 1000ms minus 10ms per unit (min 10ms)")
	playCmd.Flags().Bool("plain", false, "Plain frames without colours or screen clearing")
}
