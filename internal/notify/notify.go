// Package notify turns cooking session events into desktop notifications,
// an audible bell and a user supplied command.
package notify

import (
	"fmt"

	"github.com/ayoisaiah/simmer/internal/cooking"
)

// Message returns the title and body that describe an event to the user. It
// reports false for events that are not worth interrupting the user for.
func Message(evt cooking.Event) (title, body string, ok bool) {
	switch evt.Kind {
	case cooking.StepCompleted:
		title = fmt.Sprintf("Step %d completed", evt.Step+1)
		if evt.Stopped {
			title = fmt.Sprintf("Step %d stopped", evt.Step+1)
		}

		body = "Moving to the next step"
		if evt.Step+1 >= evt.StepCount {
			body = "That was the last step"
		}

		return title, body, true
	case cooking.StepStarted:
		return fmt.Sprintf(
				"Step %d of %d",
				evt.Step+1,
				evt.StepCount,
			),
			evt.Description,
			true
	case cooking.SessionComplete:
		return evt.Title + " is ready",
			"All steps completed! Your dish is ready to serve",
			true
	case cooking.SessionConflict:
		return "Another recipe is cooking",
			"Finish or end it before starting " + evt.Title,
			true
	case cooking.Paused:
		return "Cooking paused", evt.Title, true
	case cooking.Resumed:
		return "Cooking resumed", evt.Title, true
	case cooking.SessionEnded:
		return "Cooking session ended", evt.Title, true
	default:
		return "", "", false
	}
}

// Multi fans every event out to each notifier in order.
type Multi []cooking.Notifier

func (m Multi) Notify(evt cooking.Event) {
	for _, n := range m {
		n.Notify(evt)
	}
}

// alerts reports whether the event marks the end of a step or of the whole
// recipe. Only these interrupt the user outside the terminal.
func alerts(evt cooking.Event) bool {
	switch evt.Kind {
	case cooking.StepCompleted, cooking.SessionComplete, cooking.SessionConflict:
		return true
	default:
		return false
	}
}
