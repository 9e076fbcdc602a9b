package stopwatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/clockeroo/internal/domain/session"
	"github.com/oshokin/clockeroo/internal/engine"
	"github.com/oshokin/clockeroo/internal/logger"
	repo "github.com/oshokin/clockeroo/internal/repository/stopwatch"
	"github.com/oshokin/clockeroo/internal/service/common"
	"github.com/oshokin/clockeroo/internal/timespec"
)

// startedAtLayout formats the start instant in status output.
const startedAtLayout = "2006-01-02 15:04:05"

// errRepositoryIsNotSet is returned when no repository is configured.
var errRepositoryIsNotSet = errors.New("stopwatch repository is not set")

// Options controls the stopwatch commands.
type Options struct {
	// Runtime provides the terminal, clock and output.
	Runtime *common.Runtime
	// Repository stores the stopwatch record.
	Repository repo.Repository
	// Reset discards a running stopwatch instead of resuming it (start only).
	Reset bool
	// PID is recorded as the display process; zero means the current process.
	PID int
	// ProcessAlive reports whether a display process is still running;
	// nil uses the process table.
	ProcessAlive func(pid int) (bool, error)
}

func (o *Options) validate() error {
	if err := o.Runtime.Validate(); err != nil {
		return err
	}

	if o.Repository == nil {
		return errRepositoryIsNotSet
	}

	if o.PID == 0 {
		o.PID = os.Getpid()
	}

	if o.ProcessAlive == nil {
		o.ProcessAlive = processAlive
	}

	return nil
}

// Start shows a stopwatch. A persisted stopwatch is resumed unless Reset is set;
// otherwise a new one is started and persisted. Pressing 's' stops it and removes
// the record; quitting leaves it counting in the background.
func Start(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "stopwatch")

	if err := opts.validate(); err != nil {
		return err
	}

	rt := opts.Runtime

	sw, record, resumed, err := prepare(ctx, opts)
	if err != nil {
		return err
	}

	ctx = logger.WithKV(ctx, "id", record.ID.String())

	rt.PrintBanner()

	if resumed {
		rt.Printf("[STOPWATCH] Resuming stopwatch started at %s...", record.StartedAt.Local().Format(startedAtLayout))
	} else {
		rt.Printf("[STOPWATCH] Starting stopwatch...")
	}

	outcome, err := rt.RunSession(ctx, sw)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Stopwatch display ended", "phase", outcome.Phase.String(), "elapsed", outcome.Elapsed.String())

	if outcome.Phase != engine.PhaseStopped {
		rt.Printf("")
		rt.Printf("[Stopwatch still running in background]")
		rt.Printf("Run 'clockeroo stopwatch stop' to see the final time.")

		return nil
	}

	if err = opts.Repository.Delete(ctx, record.ID); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			logger.Debug(ctx, "Stopwatch record already removed")
		case errors.Is(err, repo.ErrSuperseded):
			logger.WarnKV(ctx, "Stopwatch record belongs to a newer stopwatch, keeping it", "error", err)
		default:
			return fmt.Errorf("remove stopwatch record: %w", err)
		}
	}

	rt.Printf("")
	rt.Printf("[Stopwatch stopped]")
	rt.Printf("   Final time: %s", timespec.FormatPrecise(outcome.Elapsed))

	return nil
}

// prepare resumes the persisted stopwatch or persists a new one.
func prepare(ctx context.Context, opts *Options) (*session.Stopwatch, *session.Record, bool, error) {
	rt := opts.Runtime

	if !opts.Reset {
		existing, err := opts.Repository.Load(ctx)

		switch {
		case err == nil:
			// The current process becomes the display of the resumed stopwatch.
			record := existing.Clone()
			record.PID = opts.PID

			if err = opts.Repository.Save(ctx, record); err != nil {
				return nil, nil, false, fmt.Errorf("save stopwatch record: %w", err)
			}

			logger.InfoKV(ctx, "Resuming stopwatch", "started_at", record.StartedAt.Format(time.RFC3339Nano))

			return record.Stopwatch(), record, true, nil
		case errors.Is(err, repo.ErrNotFound):
		case errors.Is(err, repo.ErrCorrupt):
			logger.WarnKV(ctx, "Replacing unreadable stopwatch record", "error", err)
		default:
			return nil, nil, false, fmt.Errorf("load stopwatch record: %w", err)
		}
	}

	owner, err := common.DetectActor()
	if err != nil {
		logger.DebugKV(ctx, "Unable to detect stopwatch owner", "error", err)
	}

	sw := session.NewStopwatch(session.NewBaseline(rt.Now()))
	record := session.NewRecord(sw, opts.PID, owner)

	if err = opts.Repository.Save(ctx, record); err != nil {
		return nil, nil, false, fmt.Errorf("save stopwatch record: %w", err)
	}

	return sw, record, false, nil
}

// Stop reports the final time of the persisted stopwatch and removes it.
// Having no stopwatch is not an error.
func Stop(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "stopwatch")

	if err := opts.validate(); err != nil {
		return err
	}

	rt := opts.Runtime

	record, ok, err := load(ctx, opts)
	if err != nil || !ok {
		return err
	}

	elapsed := record.Stopwatch().Elapsed(rt.Now())

	if err = opts.Repository.Delete(ctx, record.ID); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			logger.Debug(ctx, "Stopwatch record removed concurrently")
		case errors.Is(err, repo.ErrSuperseded):
			rt.Printf("[ERROR] The stopwatch was restarted while stopping; run the command again.")

			return nil
		default:
			return fmt.Errorf("remove stopwatch record: %w", err)
		}
	}

	rt.Printf("[Stopwatch stopped]")
	rt.Printf("   Final time: %s", timespec.FormatPrecise(elapsed))

	if record.PID != opts.PID && alive(ctx, opts, record.PID) {
		rt.Printf("Note: the display started by process %d is still open.", record.PID)
	}

	return nil
}

// Status reports the persisted stopwatch without stopping it.
func Status(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "stopwatch")

	if err := opts.validate(); err != nil {
		return err
	}

	rt := opts.Runtime

	record, ok, err := load(ctx, opts)
	if err != nil || !ok {
		return err
	}

	display := "closed"
	if alive(ctx, opts, record.PID) {
		display = fmt.Sprintf("open (pid %d)", record.PID)
	}

	rt.Printf("[Stopwatch is running]")
	rt.Printf("   Elapsed:    %s", timespec.FormatPrecise(record.Stopwatch().Elapsed(rt.Now())))
	rt.Printf("   Started at: %s", record.StartedAt.Local().Format(startedAtLayout))
	rt.Printf("   Owner:      %s", record.Owner)
	rt.Printf("   Display:    %s", display)

	return nil
}

// load returns the persisted record. A missing record is reported to the user;
// an unreadable one is removed.
func load(ctx context.Context, opts *Options) (*session.Record, bool, error) {
	rt := opts.Runtime

	record, err := opts.Repository.Load(ctx)

	switch {
	case err == nil:
		return record, true, nil
	case errors.Is(err, repo.ErrNotFound):
		rt.Printf("[ERROR] No stopwatch is currently running.")
		rt.Printf("Start one with: clockeroo stopwatch start")

		return nil, false, nil
	case errors.Is(err, repo.ErrCorrupt):
		logger.WarnKV(ctx, "Removing unreadable stopwatch record", "error", err)

		if err = opts.Repository.Delete(ctx, uuid.Nil); err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, false, fmt.Errorf("remove stopwatch record: %w", err)
		}

		rt.Printf("[ERROR] The stopwatch record was unreadable and has been removed.")

		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("load stopwatch record: %w", err)
	}
}

func alive(ctx context.Context, opts *Options, pid int) bool {
	ok, err := opts.ProcessAlive(pid)
	if err != nil {
		logger.DebugKV(ctx, "Unable to inspect process", "pid", pid, "error", err)

		return false
	}

	return ok
}
