// Package commontest builds service runtimes over scripted terminals.
package commontest

import (
	"bytes"
	"time"

	"github.com/oshokin/clockeroo/internal/config"
	"github.com/oshokin/clockeroo/internal/engine"
	"github.com/oshokin/clockeroo/internal/engine/enginetest"
	"github.com/oshokin/clockeroo/internal/service/common"
)

// Harness is a runtime together with the fakes behind it.
type Harness struct {
	Runtime  *common.Runtime
	Clock    *enginetest.FakeClock
	Terminal *enginetest.ScriptedTerminal
	Notifier *enginetest.RecordingNotifier
	Out      *bytes.Buffer
}

// New returns a harness whose clock reads now and whose terminal delivers keys.
func New(now time.Time, keys ...enginetest.KeyAt) *Harness {
	clock := enginetest.NewFakeClock(now)
	term := enginetest.NewScriptedTerminal(clock, keys...)
	notifier := enginetest.NewRecordingNotifier(clock)
	out := new(bytes.Buffer)

	return &Harness{
		Runtime: &common.Runtime{
			Config:   config.Default(),
			Out:      out,
			Clock:    clock,
			Notifier: notifier,
			OpenTerminal: func() (engine.Terminal, error) {
				return term, nil
			},
			LoopOptions: []engine.Option{engine.WithYield(0), engine.WithStopwatchYield(0)},
		},
		Clock:    clock,
		Terminal: term,
		Notifier: notifier,
		Out:      out,
	}
}
