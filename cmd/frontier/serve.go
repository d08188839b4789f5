package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/aretw0/frontier/internal/cli"
	httpAdapter "github.com/aretw0/frontier/pkg/adapters/http"
	"github.com/aretw0/frontier/pkg/playback"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the solver endpoint, trace reconstruction and session playback streamed
over SSE, plus health, info and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		speed, _ := cmd.Flags().GetInt("speed")

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		opts := engineOptions(cmd)
		opts.Registerer = reg
		logger := cli.CreateLogger(opts.Debug)
		eng, closer, err := cli.NewEngine(opts, logger)
		if err != nil {
			return err
		}
		defer closer()
		defer eng.Close()

		handler := httpAdapter.NewHandler(eng,
			httpAdapter.WithGatherer(reg),
			httpAdapter.WithInterval(playback.Interval(speed)),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Fprintf(cmd.OutOrStdout(), "Starting Frontier Server on %s (maze %q)\n", srv.Addr, eng.Maze().Name)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			fmt.Fprintf(cmd.OutOrStdout(), "\nStart shutdown... Signal: %v\n", ctx.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Frontier Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Int("speed", 50, "Default playback speed for session solves")
}
