package alarm

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/clockeroo/internal/domain/session"
	"github.com/oshokin/clockeroo/internal/logger"
	"github.com/oshokin/clockeroo/internal/service/common"
	"github.com/oshokin/clockeroo/internal/timespec"
)

// Options controls the alarm command.
type Options struct {
	// Runtime provides the terminal, clock and notifier.
	Runtime *common.Runtime
	// Time is the requested time of day, e.g. "7:20am" or "19:20".
	Time string
}

// Run waits on the interactive display until the next occurrence of the
// requested time of day and rings once.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm")

	rt := opts.Runtime
	if err := rt.Validate(); err != nil {
		return err
	}

	at, err := timespec.ParseTimeOfDay(opts.Time)
	if err != nil {
		return fmt.Errorf("parse time: %w", err)
	}

	alarm := session.NewAlarm(session.NewBaseline(rt.Now()), at)

	logger.InfoKV(ctx, "Alarm armed", "target", alarm.Target().Format(time.RFC3339))

	rt.PrintBanner()
	rt.Printf("[ALARM] Setting alarm for %s...", at)

	outcome, err := rt.RunSession(ctx, alarm)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm ended", "phase", outcome.Phase.String(), "triggered", outcome.Triggered)

	if !outcome.Triggered {
		rt.Printf("[ALARM] Alarm for %s canceled.", at)
	}

	return nil
}
