package cooking

import (
	"context"
	"sync"
	"time"
)

// DefaultTickInterval is how often the driver ticks the running session.
const DefaultTickInterval = time.Second

// Driver runs a single repeating ticker for the active running session. A
// change of session or of running state cancels the previous ticker before a
// new one is started.
type Driver struct {
	tick     func(recipeID string)
	cancel   context.CancelFunc
	key      string
	wg       sync.WaitGroup
	interval time.Duration
	mu       sync.Mutex
	closed   bool
}

// NewDriver creates a driver that calls tick every interval while a session
// is running.
func NewDriver(interval time.Duration, tick func(recipeID string)) *Driver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &Driver{
		interval: interval,
		tick:     tick,
	}
}

// Sync points the driver at the given session. An empty recipeID or a paused
// session leaves no ticker running. Sync never waits for a cancelled ticker
// to exit so it is safe to call from inside a tick.
func (d *Driver) Sync(recipeID string, running bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	key := ""
	if recipeID != "" && running {
		key = recipeID
	}

	if key == d.key && (key == "" || d.cancel != nil) {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	d.key = key

	if key == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.wg.Add(1)

	go d.run(ctx, key)
}

func (d *Driver) run(ctx context.Context, recipeID string) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}

			d.tick(recipeID)
		}
	}
}

// Live returns the recipe currently being ticked, if any.
func (d *Driver) Live() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.key, d.key != ""
}

// Close stops the ticker and waits for it to exit. It must not be called
// from inside a tick.
func (d *Driver) Close() {
	d.mu.Lock()
	d.closed = true

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	d.key = ""
	d.mu.Unlock()

	d.wg.Wait()
}
