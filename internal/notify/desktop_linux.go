package notify

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// platformNotify posts a notification through the freedesktop notification
// service on the session bus.
func platformNotify(ctx context.Context, title, body string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.CallWithContext(ctx, "org.freedesktop.Notifications.Notify", 0,
		"pomo",                    // application name
		uint32(0),                 // not replacing an earlier notification
		"",                        // no icon
		title,
		body,
		[]string{},                // no actions
		map[string]dbus.Variant{}, // no hints
		int32(5000),               // auto-dismiss after 5s
	)
	return call.Err
}
