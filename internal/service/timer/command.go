package timer

import (
	"context"
	"fmt"

	"github.com/oshokin/clockeroo/internal/domain/session"
	"github.com/oshokin/clockeroo/internal/logger"
	"github.com/oshokin/clockeroo/internal/service/common"
	"github.com/oshokin/clockeroo/internal/timespec"
)

// Options controls the timer command.
type Options struct {
	// Runtime provides the terminal, clock and notifier.
	Runtime *common.Runtime
	// Duration is the requested duration, e.g. "1h30m" or "90".
	Duration string
}

// Run counts down the requested duration on the interactive display and
// announces completion.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "timer")

	rt := opts.Runtime
	if err := rt.Validate(); err != nil {
		return err
	}

	duration, err := timespec.ParseDuration(opts.Duration)
	if err != nil {
		return fmt.Errorf("parse duration: %w", err)
	}

	// The baseline is captured once; everything after derives from it.
	countdown, err := session.NewCountdown(session.NewBaseline(rt.Now()), duration)
	if err != nil {
		return fmt.Errorf("create timer: %w", err)
	}

	rt.PrintBanner()
	rt.Printf("[TIMER] Starting timer for %s...", timespec.FormatDuration(duration))

	outcome, err := rt.RunSession(ctx, countdown)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Timer ended",
		"phase", outcome.Phase.String(),
		"triggered", outcome.Triggered,
		"elapsed", outcome.Elapsed.String(),
	)

	if outcome.Triggered {
		rt.Printf("[TIMER] Timer finished.")
	} else {
		rt.Printf("[TIMER] Timer canceled with %s remaining.", timespec.FormatDuration(countdown.Remaining(rt.Now())))
	}

	return nil
}
