package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/clockeroo/internal/service/alarm"
	"github.com/oshokin/clockeroo/internal/service/common"
)

// alarmCmd rings at a time of day.
var alarmCmd = &cobra.Command{
	Use:   "alarm <time>",
	Short: "Ring at a time of day.",
	Long: `Wait for the next occurrence of a time of day and ring once.

Times are given as H:MMam, H:MMpm (hour 1-12) or HH:MM (hour 0-23).
A time that has already passed today rings tomorrow. Press 'q' or Ctrl-C to cancel.`,
	Example: "  clockeroo alarm 7:30am\n  clockeroo alarm 19:30",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		// Setup graceful shutdown handling.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return alarm.Run(ctx, &alarm.Options{
			Runtime: common.NewRuntime(settings),
			Time:    args[0],
		})
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(alarmCmd)
}
