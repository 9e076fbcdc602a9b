package notify

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/oshokin/clockeroo/internal/logger"
)

// appName is reported to the desktop notification service.
const appName = "clockeroo"

// defaultCommandTimeout bounds notification helpers that are waited for.
const defaultCommandTimeout = 2 * time.Second

// bell is the ASCII BEL control character.
const bell = "\a"

// Notifier signals that a session completed.
type Notifier interface {
	// PlayAlert emits an audible cue.
	PlayAlert(ctx context.Context)
	// SendNotification shows a desktop notification.
	SendNotification(ctx context.Context, title, body string)
}

// Nop is a Notifier that does nothing.
type Nop struct{}

// PlayAlert implements Notifier.
func (Nop) PlayAlert(context.Context) {}

// SendNotification implements Notifier.
func (Nop) SendNotification(context.Context, string, string) {}

// commandRunner starts external helpers; wait selects whether to block until exit.
type commandRunner func(ctx context.Context, wait bool, name string, args ...string) error

// Desktop is the Notifier used on real systems.
type Desktop struct {
	// bellOut receives the BEL character; nil disables the bell.
	bellOut io.Writer
	// sound enables the alert sound.
	sound bool
	// soundCommand overrides the platform sound command.
	soundCommand []string
	// desktop enables desktop notifications.
	desktop bool
	// timeout bounds helpers that are waited for.
	timeout time.Duration

	// run starts external helpers.
	run commandRunner
	// lookPath resolves helper executables.
	lookPath func(file string) (string, error)
	// bus sends notifications over D-Bus where available.
	bus func(ctx context.Context, title, body string) error
}

// Option configures a Desktop notifier.
type Option func(*Desktop)

// WithBell writes the terminal bell to w; nil disables it.
func WithBell(w io.Writer) Option {
	return func(d *Desktop) {
		d.bellOut = w
	}
}

// WithSound enables or disables the alert sound.
func WithSound(enabled bool) Option {
	return func(d *Desktop) {
		d.sound = enabled
	}
}

// WithSoundCommand replaces the platform sound command.
func WithSoundCommand(command []string) Option {
	return func(d *Desktop) {
		if len(command) > 0 {
			d.soundCommand = append([]string(nil), command...)
		}
	}
}

// WithDesktopNotifications enables or disables desktop notifications.
func WithDesktopNotifications(enabled bool) Option {
	return func(d *Desktop) {
		d.desktop = enabled
	}
}

// NewDesktop creates a notifier with the bell on stdout, the sound and desktop notifications enabled.
func NewDesktop(opts ...Option) *Desktop {
	d := &Desktop{
		bellOut:  os.Stdout,
		sound:    true,
		desktop:  true,
		timeout:  defaultCommandTimeout,
		run:      runCommand,
		lookPath: exec.LookPath,
		bus:      sendBusNotification,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// PlayAlert rings the terminal bell and starts the alert sound without waiting for it.
func (d *Desktop) PlayAlert(ctx context.Context) {
	if d.bellOut != nil {
		if _, err := io.WriteString(d.bellOut, bell); err != nil {
			logger.DebugKV(ctx, "Terminal bell failed", "error", err)
		}
	}

	if !d.sound {
		return
	}

	command := d.soundCommand
	if len(command) == 0 {
		command = d.findCommand(soundCandidates())
	}

	if len(command) == 0 {
		logger.Debug(ctx, "No sound player available")
		return
	}

	if err := d.run(context.WithoutCancel(ctx), false, command[0], command[1:]...); err != nil {
		logger.DebugKV(ctx, "Alert sound failed", "command", command[0], "error", err)
	}
}

// SendNotification shows a desktop notification, trying D-Bus before helper commands.
func (d *Desktop) SendNotification(ctx context.Context, title, body string) {
	if !d.desktop {
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if d.bus != nil {
		err := d.bus(callCtx, title, body)
		if err == nil {
			return
		}

		logger.DebugKV(ctx, "D-Bus notification failed", "error", err)
	}

	command := d.findCommand(notificationCandidates(title, body))
	if len(command) == 0 {
		logger.Debug(ctx, "No notification helper available")
		return
	}

	if err := d.run(callCtx, true, command[0], command[1:]...); err != nil {
		logger.DebugKV(ctx, "Desktop notification failed", "command", command[0], "error", err)
	}
}

// findCommand returns the first candidate whose executable is installed.
func (d *Desktop) findCommand(candidates [][]string) []string {
	for _, candidate := range candidates {
		if len(candidate) == 0 {
			continue
		}

		if _, err := d.lookPath(candidate[0]); err == nil {
			return candidate
		}
	}

	return nil
}

// runCommand starts the helper. Unwaited helpers are reaped in the background.
func runCommand(ctx context.Context, wait bool, name string, args ...string) error {
	//nolint:gosec // Helpers come from a fixed list or from the user's own settings.
	cmd := exec.CommandContext(ctx, name, args...)
	if wait {
		return cmd.Run()
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
