package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/oshokin/clockeroo/internal/engine"
	"github.com/oshokin/clockeroo/internal/ui/view"
)

// Size used when the terminal does not report one.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// readBufferSize is the number of bytes read from the input at once.
const readBufferSize = 64

// ErrNotTerminal is returned when the input or output is not an interactive terminal.
var ErrNotTerminal = errors.New("not an interactive terminal")

// Terminal is an engine.Terminal over a raw-mode TTY showing the alternate screen.
type Terminal struct {
	in     *os.File
	out    *os.File
	output *termenv.Output
	reader cancelreader.CancelReader
	state  *term.State

	keys chan engine.Key
	errs chan error
	done chan struct{}

	// readErr is the input error already taken from errs; only Poll touches it.
	readErr error

	closeOnce sync.Once
	closeErr  error
}

// Open switches the terminal to raw mode and the alternate screen. The caller
// must Close it to restore the terminal.
func Open(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	reader, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("create input reader: %w", err),
			term.Restore(int(in.Fd()), state),
		)
	}

	t := &Terminal{
		in:     in,
		out:    out,
		output: termenv.NewOutput(out),
		reader: reader,
		state:  state,
		keys:   make(chan engine.Key, readBufferSize),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}

	t.output.AltScreen()
	t.output.HideCursor()
	t.output.ClearScreen()

	go t.readKeys()

	return t, nil
}

func (t *Terminal) readKeys() {
	var (
		buf     = make([]byte, readBufferSize)
		decoder keyDecoder
		keys    []engine.Key
	)

	for {
		n, err := t.reader.Read(buf)

		keys = decoder.decode(buf[:n], keys[:0])
		for _, key := range keys {
			select {
			case t.keys <- key:
			case <-t.done:
				return
			}
		}

		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) {
				select {
				case t.errs <- err:
				case <-t.done:
				}
			}

			return
		}
	}
}

// Poll implements engine.Input. Keys read before an input error are delivered
// before the error.
func (t *Terminal) Poll(ctx context.Context, timeout time.Duration) (engine.Key, error) {
	select {
	case key := <-t.keys:
		return key, nil
	default:
	}

	if t.readErr != nil {
		return engine.KeyNone, t.readErr
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return engine.KeyNone, ctx.Err()
	case key := <-t.keys:
		return key, nil
	case err := <-t.errs:
		t.readErr = err

		// The reader queues every key before reporting its error.
		select {
		case key := <-t.keys:
			return key, nil
		default:
			return engine.KeyNone, err
		}
	case <-timer.C:
		return engine.KeyNone, nil
	}
}

// Render implements engine.Screen.
func (t *Terminal) Render(frame view.Frame) error {
	width, height, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		width, height = fallbackWidth, fallbackHeight
	}

	screen := Paint(frame, width, height)

	t.output.MoveCursor(1, 1)

	if _, err = t.output.WriteString(rawNewlines(screen)); err != nil {
		return fmt.Errorf("write screen: %w", err)
	}

	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		t.reader.Cancel()
		close(t.done)

		t.output.ShowCursor()
		t.output.ExitAltScreen()

		t.closeErr = errors.Join(
			term.Restore(int(t.in.Fd()), t.state),
			t.reader.Close(),
		)
	})

	return t.closeErr
}

// rawNewlines converts line feeds for a terminal whose output processing is off.
func rawNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}
