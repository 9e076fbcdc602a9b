//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/clockeroo/internal/config"
	"github.com/oshokin/clockeroo/internal/domain/session"
	"github.com/oshokin/clockeroo/internal/engine"
	"github.com/oshokin/clockeroo/internal/notify"
	"github.com/oshokin/clockeroo/internal/ui/terminal"
	"github.com/oshokin/clockeroo/internal/ui/view"
)

// errRuntimeIsNotSet is returned when a service is called without a runtime.
var errRuntimeIsNotSet = errors.New("runtime is not set")

//nolint:gochecknoglobals // Immutable style.
var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

// Runtime bundles what a command needs to run an interactive session.
type Runtime struct {
	// Config holds the validated settings.
	Config *config.Config
	// Out receives plain output printed outside the interactive display.
	Out io.Writer
	// Clock provides the current instant.
	Clock engine.Clock
	// Notifier announces completion.
	Notifier notify.Notifier
	// OpenTerminal prepares the interactive display.
	OpenTerminal func() (engine.Terminal, error)
	// LoopOptions are applied after the options derived from Config.
	LoopOptions []engine.Option
}

// NewRuntime returns a runtime over the process terminal and the system clock.
func NewRuntime(cfg *config.Config) *Runtime {
	return &Runtime{
		Config:   cfg,
		Out:      os.Stdout,
		Clock:    engine.SystemClock{},
		Notifier: NewNotifier(cfg),
		OpenTerminal: func() (engine.Terminal, error) {
			t, err := terminal.Open(os.Stdin, os.Stdout)
			if err != nil {
				return nil, err
			}

			return t, nil
		},
	}
}

// NewNotifier builds the desktop notifier described by cfg.
func NewNotifier(cfg *config.Config) notify.Notifier {
	opts := []notify.Option{
		notify.WithSound(!cfg.Mute),
		notify.WithSoundCommand(cfg.SoundCommand),
		notify.WithDesktopNotifications(!cfg.DisableNotifications),
	}

	if cfg.Mute {
		opts = append(opts, notify.WithBell(nil))
	}

	return notify.NewDesktop(opts...)
}

// Validate reports whether the runtime can be used.
func (r *Runtime) Validate() error {
	if r == nil || r.Config == nil || r.Out == nil || r.Clock == nil || r.OpenTerminal == nil {
		return errRuntimeIsNotSet
	}

	return nil
}

// Now returns the current instant.
func (r *Runtime) Now() time.Time {
	return r.Clock.Now()
}

// Printf writes a formatted line to Out.
func (r *Runtime) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.Out, format+"\n", args...)
}

// PrintBanner writes the ASCII header followed by a blank line.
func (r *Runtime) PrintBanner() {
	_, _ = fmt.Fprintf(r.Out, "\n%s\n\n", bannerStyle.Render(strings.Join(view.Banner(), "\n")))
}

// RunSession shows s on the terminal until it ends. The terminal is always
// restored; a restore failure is joined to the returned error.
func (r *Runtime) RunSession(ctx context.Context, s session.Session) (outcome engine.Outcome, err error) {
	term, err := r.OpenTerminal()
	if err != nil {
		return engine.Outcome{}, fmt.Errorf("open terminal: %w", err)
	}

	defer func() {
		if closeErr := term.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("restore terminal: %w", closeErr))
		}
	}()

	opts := []engine.Option{
		engine.WithClock(r.Clock),
		engine.WithNotifier(r.Notifier),
		engine.WithPollInterval(r.Config.TimerPoll),
		engine.WithYield(r.Config.TimerPoll),
		engine.WithStopwatchPollInterval(r.Config.StopwatchPoll),
		engine.WithStopwatchYield(r.Config.StopwatchPoll),
	}

	loop := engine.New(term, term, append(opts, r.LoopOptions...)...)

	outcome, err = loop.Run(ctx, s)
	if err != nil {
		return engine.Outcome{}, err
	}

	return outcome, nil
}
