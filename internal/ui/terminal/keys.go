package terminal

import "github.com/oshokin/clockeroo/internal/engine"

// Bytes that open and shape escape sequences.
const (
	esc           = 0x1b
	csiIntroducer = '['
	ss3Introducer = 'O'
)

type decodeState int

const (
	stateGround decodeState = iota
	stateEscape
	stateCSI
	stateSS3
)

// keyDecoder turns raw input bytes into keys. Escape sequences sent for
// function, cursor and modified keys are consumed whole and produce no key,
// so their final byte is never mistaken for a command letter.
type keyDecoder struct {
	state decodeState
}

// decode appends the keys found in chunk to keys. A sequence split across
// chunks is continued on the next call; a lone ESC at the end of a chunk is
// the Escape key and is dropped.
func (d *keyDecoder) decode(chunk []byte, keys []engine.Key) []engine.Key {
	for _, b := range chunk {
		if key, ok := d.feed(b); ok {
			keys = append(keys, key)
		}
	}

	if d.state == stateEscape {
		d.state = stateGround
	}

	return keys
}

func (d *keyDecoder) feed(b byte) (engine.Key, bool) {
	switch d.state {
	case stateEscape:
		switch b {
		case csiIntroducer:
			d.state = stateCSI
		case ss3Introducer:
			d.state = stateSS3
		default:
			// Alt chords are not commands.
			d.state = stateGround
		}

		return engine.KeyNone, false
	case stateCSI:
		// Parameter (0x30-0x3f) and intermediate (0x20-0x2f) bytes continue the
		// sequence; a final byte (0x40-0x7e) or anything else ends it.
		if b < 0x20 || b > 0x3f {
			d.state = stateGround
		}

		return engine.KeyNone, false
	case stateSS3:
		d.state = stateGround

		return engine.KeyNone, false
	default:
		if b == esc {
			d.state = stateEscape

			return engine.KeyNone, false
		}

		return engine.Key(b), true
	}
}
