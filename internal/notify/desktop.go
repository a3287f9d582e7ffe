package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/simmer/internal/cooking"
	"github.com/ayoisaiah/simmer/internal/static"
)

// Desktop shows a system notification when a step or the recipe finishes.
type Desktop struct {
	send   func(title, msg, icon string) error
	logger *slog.Logger
	icon   string
}

// NewDesktop returns a notifier backed by beeep. The icon is left empty if
// it has not been installed.
func NewDesktop(logger *slog.Logger) *Desktop {
	return &Desktop{
		send:   beeep.Notify,
		logger: logger,
		icon:   static.IconPath(),
	}
}

func (d *Desktop) Notify(evt cooking.Event) {
	if !alerts(evt) {
		return
	}

	title, body, ok := Message(evt)
	if !ok {
		return
	}

	if err := d.send(title, body, d.icon); err != nil {
		d.logger.Error("unable to display notification", "error", err)
	}
}
