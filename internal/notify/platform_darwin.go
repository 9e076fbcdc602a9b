package notify

import (
	"context"
	"errors"
	"strconv"
)

// errNoBus reports that D-Bus is not used on this platform.
var errNoBus = errors.New("d-bus notifications are not available on darwin")

// soundCandidates lists sound players in order of preference.
func soundCandidates() [][]string {
	return [][]string{
		{"afplay", "/System/Library/Sounds/Glass.aiff"},
	}
}

// notificationCandidates lists notification helpers.
func notificationCandidates(title, body string) [][]string {
	script := "display notification " + strconv.Quote(body) + " with title " + strconv.Quote(title)

	return [][]string{
		{"osascript", "-e", script},
	}
}

func sendBusNotification(context.Context, string, string) error {
	return errNoBus
}
