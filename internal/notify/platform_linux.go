package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// D-Bus coordinates of the freedesktop notification service.
const (
	busName      = "org.freedesktop.Notifications"
	busPath      = "/org/freedesktop/Notifications"
	busMethod    = busName + ".Notify"
	busIcon      = "dialog-information"
	busNoTimeout = int32(0)
)

// soundCandidates lists sound players in order of preference.
func soundCandidates() [][]string {
	return [][]string{
		{"paplay", "/usr/share/sounds/freedesktop/stereo/complete.oga"},
		{"canberra-gtk-play", "--id", "complete"},
		{"aplay", "-q", "/usr/share/sounds/alsa/Front_Center.wav"},
	}
}

// notificationCandidates lists notification helpers used when D-Bus is unavailable.
func notificationCandidates(title, body string) [][]string {
	return [][]string{
		{"notify-send", "--app-name", appName, "--icon", busIcon, "--expire-time", "0", title, body},
	}
}

// sendBusNotification calls org.freedesktop.Notifications.Notify on the session bus.
func sendBusNotification(ctx context.Context, title, body string) error {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}

	defer func() {
		_ = conn.Close()
	}()

	call := conn.Object(busName, busPath).CallWithContext(
		ctx,
		busMethod,
		0,
		appName,
		uint32(0),
		busIcon,
		title,
		body,
		[]string{},
		map[string]dbus.Variant{},
		busNoTimeout,
	)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}

	return nil
}
