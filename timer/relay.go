package timer

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/simmer/internal/cooking"
)

// eventMsg carries a session event into the bubbletea event loop.
type eventMsg cooking.Event

// Relay forwards session events to a running program. Notify never blocks,
// so it is safe to call from inside Update.
type Relay struct {
	wake  chan struct{}
	queue []cooking.Event
	mu    sync.Mutex
}

// NewRelay returns a relay that queues events until a program is attached.
func NewRelay() *Relay {
	return &Relay{
		wake: make(chan struct{}, 1),
	}
}

func (r *Relay) Notify(evt cooking.Event) {
	r.mu.Lock()
	r.queue = append(r.queue, evt)
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// forward delivers queued events in order until ctx is done.
func (r *Relay) forward(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.wake:
		}

		r.mu.Lock()
		events := r.queue
		r.queue = nil
		r.mu.Unlock()

		for i := range events {
			send(eventMsg(events[i]))
		}
	}
}
