//go:build !linux && !darwin && !windows

package notify

import (
	"context"
	"errors"
)

// errNoBus reports that D-Bus is not used on this platform.
var errNoBus = errors.New("d-bus notifications are not available on this platform")

// soundCandidates returns nothing: only the bell is available.
func soundCandidates() [][]string {
	return nil
}

// notificationCandidates lists notification helpers.
func notificationCandidates(title, body string) [][]string {
	return [][]string{
		{"notify-send", title, body},
	}
}

func sendBusNotification(context.Context, string, string) error {
	return errNoBus
}
