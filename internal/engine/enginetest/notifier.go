package enginetest

import (
	"context"
	"sync"
	"time"
)

// Notification is a recorded desktop notification.
type Notification struct {
	Title string
	Body  string
	At    time.Time
}

// RecordingNotifier records every call, stamped with its clock.
type RecordingNotifier struct {
	mu            sync.Mutex
	clock         *FakeClock
	alerts        []time.Time
	notifications []Notification
}

// NewRecordingNotifier returns a notifier stamping calls with clock.
func NewRecordingNotifier(clock *FakeClock) *RecordingNotifier {
	return &RecordingNotifier{clock: clock}
}

// PlayAlert implements notify.Notifier.
func (n *RecordingNotifier) PlayAlert(context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.alerts = append(n.alerts, n.clock.Now())
}

// SendNotification implements notify.Notifier.
func (n *RecordingNotifier) SendNotification(_ context.Context, title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.notifications = append(n.notifications, Notification{Title: title, Body: body, At: n.clock.Now()})
}

// Alerts returns the instants PlayAlert was called at.
func (n *RecordingNotifier) Alerts() []time.Time {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]time.Time(nil), n.alerts...)
}

// Notifications returns the recorded notifications.
func (n *RecordingNotifier) Notifications() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]Notification(nil), n.notifications...)
}
