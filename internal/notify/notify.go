// Package notify surfaces user-visible notifications on the desktop and
// the terminal. Delivery is fire-and-forget: failures are logged, never
// returned to the caller.
package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"
)

// Kind classifies a notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Notifier is the notification sink consumed by the core components.
type Notifier interface {
	Notify(kind Kind, message, description string)
}

// Desktop sends desktop notifications through the system notifier and
// mirrors them on the terminal.
type Desktop struct {
	// PathToIcon may be empty if no icon file is installed.
	PathToIcon string
	Enabled    bool
}

func (d *Desktop) Notify(kind Kind, message, description string) {
	switch kind {
	case Error:
		pterm.Error.Println(message)
	case Success:
		pterm.Success.Println(message)
	default:
		pterm.Info.Println(message)
	}

	if description != "" {
		pterm.Println(description)
	}

	if !d.Enabled {
		return
	}

	err := beeep.Notify(message, description, d.PathToIcon)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}
