package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	repo "github.com/oshokin/clockeroo/internal/repository/stopwatch"
	"github.com/oshokin/clockeroo/internal/service/common"
	"github.com/oshokin/clockeroo/internal/service/stopwatch"
)

var (
	// reset discards a running stopwatch on start.
	reset bool

	// stopwatchCmd groups the stopwatch subcommands.
	stopwatchCmd = &cobra.Command{
		Use:   "stopwatch",
		Short: "Measure elapsed time across terminal sessions.",
		Long: `Measure elapsed time. A stopwatch keeps counting after its display is closed:
start it, quit the display with 'q' and stop it later, from any terminal.`,
	}

	stopwatchStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Show the stopwatch, starting one if none is running.",
		Long: `Show the running stopwatch on a full-screen display, or start a new one.

Press 's' to stop it and print the final time, or 'q' / Ctrl-C to close the
display while the stopwatch keeps running. Use --reset to start over.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStopwatch(stopwatch.Start)
		},
	}

	stopwatchStopCmd = &cobra.Command{
		Use:   "stop",
		Short: "Stop the running stopwatch and print the final time.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStopwatch(stopwatch.Stop)
		},
	}

	stopwatchStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "Print the elapsed time of the running stopwatch without stopping it.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStopwatch(stopwatch.Status)
		},
	}
)

// runStopwatch runs a stopwatch operation against the configured record file.
func runStopwatch(operation func(context.Context, *stopwatch.Options) error) error {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return operation(ctx, &stopwatch.Options{
		Runtime:    common.NewRuntime(settings),
		Repository: repo.NewFileRepository(settings.StateFile),
		Reset:      reset,
	})
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	stopwatchStartCmd.Flags().BoolVar(&reset, "reset", false, "discard the running stopwatch and start a new one")

	stopwatchCmd.AddCommand(stopwatchStartCmd, stopwatchStopCmd, stopwatchStatusCmd)
	rootCmd.AddCommand(stopwatchCmd)
}
