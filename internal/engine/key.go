package engine

// Key is a single key press.
type Key rune

const (
	// KeyNone means no key arrived before the poll timeout.
	KeyNone Key = 0
	// KeyCtrlC is Ctrl-C as read in raw mode.
	KeyCtrlC Key = 0x03
)

// Signal is what a key means to a running session.
type Signal int

const (
	// SignalContinue keeps the session running.
	SignalContinue Signal = iota
	// SignalCancel quits the display.
	SignalCancel
	// SignalStop stops a stopwatch.
	SignalStop
)

// String implements fmt.Stringer.
func (s Signal) String() string {
	switch s {
	case SignalCancel:
		return "cancel"
	case SignalStop:
		return "stop"
	default:
		return "continue"
	}
}

// Classify maps a key to its signal.
func Classify(k Key) Signal {
	switch k {
	case 'q', 'Q', KeyCtrlC:
		return SignalCancel
	case 's', 'S':
		return SignalStop
	default:
		return SignalContinue
	}
}
