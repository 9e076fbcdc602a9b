package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/clockeroo/internal/service/common"
	"github.com/oshokin/clockeroo/internal/service/timer"
)

// timerCmd counts down a duration.
var timerCmd = &cobra.Command{
	Use:   "timer <duration>",
	Short: "Count down a duration.",
	Long: `Count down a duration on a full-screen display and ring when it is over.

Durations combine hours, minutes and seconds: 90, 45s, 5m, 1h30m, 2h15m30s.
A bare number is a number of seconds. Press 'q' or Ctrl-C to cancel.`,
	Example: "  clockeroo timer 25m\n  clockeroo timer 1h30m",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		// Setup graceful shutdown handling.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return timer.Run(ctx, &timer.Options{
			Runtime:  common.NewRuntime(settings),
			Duration: args[0],
		})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(timerCmd)
}
