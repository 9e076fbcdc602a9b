package view

import (
	"fmt"
	"time"

	"github.com/oshokin/clockeroo/internal/domain/session"
	"github.com/oshokin/clockeroo/internal/timespec"
)

// banner is the ASCII header drawn above every running display.
//
//nolint:gochecknoglobals // Read-only artwork.
var banner = []string{
	`      _            _`,
	`  ___| | ___   ___| | _____ _ __ ___   ___`,
	` / __| |/ _ \ / __| |/ / _ \ '__/ _ \ / _ \`,
	`| (__| | (_) | (__|   <  __/ | | (_) | (_) |`,
	` \___|_|\___/ \___|_|\_\___|_|  \___/ \___/`,
}

// Remaining-time thresholds of the countdown color tiers.
const (
	alertBelow = 10 * time.Second
	warnBelow  = time.Minute
)

// Key help lines.
const (
	helpCancel    = "Press 'q' or Ctrl-C to cancel"
	helpExit      = "Press 'q' or Ctrl-C to exit"
	helpStopwatch = "Press 's' to stop, 'q' or Ctrl-C to quit"
)

// Announcement is the desktop notification sent when a session completes.
type Announcement struct {
	// Title is the notification summary.
	Title string
	// Body is the notification text.
	Body string
}

// Banner returns the ASCII header lines.
func Banner() []string {
	return append([]string(nil), banner...)
}

// RemainingTone picks the color tier for a countdown's remaining time.
func RemainingTone(remaining time.Duration) Tone {
	switch {
	case remaining < alertBelow:
		return ToneAlert
	case remaining < warnBelow:
		return ToneWarn
	default:
		return ToneOK
	}
}

// Running returns the in-progress frame of s in state st.
func Running(s session.Session, st session.State) Frame {
	switch sess := s.(type) {
	case *session.Countdown:
		return Countdown(st.Remaining)
	case *session.Alarm:
		return Alarm(sess.At(), st.Remaining)
	default:
		return Stopwatch(st.Elapsed)
	}
}

// Triggered returns the completion frame and announcement of s.
func Triggered(s session.Session) (Frame, Announcement) {
	if sess, ok := s.(*session.Alarm); ok {
		return AlarmRinging(sess.At())
	}

	return TimerFinished()
}

// Countdown is the running timer display.
func Countdown(remaining time.Duration) Frame {
	rows := headerRows()
	rows = append(rows,
		blank(),
		blank(),
		strong("Timer Running", ToneAccent),
		blank(),
		line("Time Remaining", ToneHint),
		strong(timespec.FormatDuration(remaining), RemainingTone(remaining)),
		blank(),
		blank(),
		line(helpCancel, ToneHint),
	)

	return Frame{Layout: LayoutPanel, Border: ToneAccent, Rows: rows}
}

// Stopwatch is the running stopwatch display.
func Stopwatch(elapsed time.Duration) Frame {
	rows := headerRows()
	rows = append(rows,
		blank(),
		blank(),
		strong("Stopwatch Running", ToneAccent),
		blank(),
		line("Elapsed Time", ToneHint),
		strong(timespec.FormatPrecise(elapsed), ToneOK),
		blank(),
		blank(),
		line(helpStopwatch, ToneHint),
	)

	return Frame{Layout: LayoutPanel, Border: ToneAccent, Rows: rows}
}

// Alarm is the armed alarm display.
func Alarm(at timespec.TimeOfDay, remaining time.Duration) Frame {
	rows := headerRows()
	rows = append(rows,
		blank(),
		blank(),
		strong("Alarm Set", ToneAccent),
		blank(),
		line("Alarm will ring at "+at.String(), ToneWarn),
		blank(),
		line("Time Until Alarm", ToneHint),
		strong(timespec.FormatDuration(remaining)+" remaining", ToneOK),
		blank(),
		line(helpCancel, ToneHint),
	)

	return Frame{Layout: LayoutPanel, Border: ToneAccent, Rows: rows}
}

// TimerFinished is the completed timer display and its notification.
func TimerFinished() (Frame, Announcement) {
	frame := Frame{
		Layout: LayoutStack,
		Rows: []Row{
			{Spans: []Span{{Text: "TIMER FINISHED!", Tone: ToneAlert, Bold: true}}, Boxed: true},
			{Spans: []Span{{Text: "Your timer has completed!", Tone: ToneWarn}}, Boxed: true},
			line(helpExit, ToneHint),
		},
	}

	return frame, Announcement{Title: "Timer Finished!", Body: "Your timer has completed!"}
}

// AlarmRinging is the triggered alarm display and its notification.
func AlarmRinging(at timespec.TimeOfDay) (Frame, Announcement) {
	message := fmt.Sprintf("It's %s!", at)

	frame := Frame{
		Layout: LayoutStack,
		Rows: []Row{
			{Spans: []Span{{Text: "ALARM!", Tone: ToneAlert, Bold: true, Blink: true}}, Boxed: true},
			{Spans: []Span{{Text: message, Tone: ToneWarn, Bold: true}}, Boxed: true},
			line(helpExit, ToneHint),
		},
	}

	return frame, Announcement{Title: "Alarm!", Body: message}
}

// headerRows returns the banner as muted rows.
func headerRows() []Row {
	rows := make([]Row, 0, len(banner)+10)
	for _, text := range banner {
		rows = append(rows, Row{Spans: []Span{{Text: text, Tone: ToneMuted}}, Preformatted: true})
	}

	return rows
}
