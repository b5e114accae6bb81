// Package notifier delivers the composed payload to the desktop
// notification service.
package notifier

import (
	"fmt"
	"runtime"

	"github.com/gen2brain/beeep"
	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"notify-complete/internal/output"
)

// AppName identifies this tool to the notification server.
const AppName = "notify-complete"

// Notifier sends desktop notifications.
type Notifier struct {
	log zerolog.Logger
}

// New creates a new Notifier.
func New(log zerolog.Logger) *Notifier {
	return &Notifier{log: log}
}

// Send dispatches the payload. On Linux it talks to
// org.freedesktop.Notifications directly so urgency, timeout and icon
// all reach the server; elsewhere it goes through beeep, which only
// carries title, body and icon.
func (n *Notifier) Send(p output.Payload) error {
	switch runtime.GOOS {
	case "linux":
		return n.sendDBus(p)
	default:
		return beeep.Notify(p.Title, p.Body, p.Icon)
	}
}

func (n *Notifier) sendDBus(p output.Payload) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(p.Urgency)),
	}

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		AppName,
		uint32(0), // replaces_id
		p.Icon,
		p.Title,
		p.Body,
		[]string{}, // actions
		hints,
		p.Timeout.ExpireMillis(),
	)
	if call.Err != nil {
		return fmt.Errorf("sending notification: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err == nil {
		n.log.Debug().Uint32("id", id).Msg("notification sent")
	}
	return nil
}
