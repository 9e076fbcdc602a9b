package notify

import (
	"context"
	"errors"
)

// errNoBus reports that D-Bus is not used on this platform.
var errNoBus = errors.New("d-bus notifications are not available on windows")

// soundCandidates lists sound players in order of preference.
func soundCandidates() [][]string {
	return [][]string{
		{"powershell.exe", "-NoProfile", "-Command", "[console]::beep(440,300)"},
	}
}

// notificationCandidates returns nothing: the bell and the on-screen state carry the alert.
func notificationCandidates(string, string) [][]string {
	return nil
}

func sendBusNotification(context.Context, string, string) error {
	return errNoBus
}
