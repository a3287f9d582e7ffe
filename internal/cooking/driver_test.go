package cooking

import (
	"testing"
	"time"
)

func waitTick(t *testing.T, ch <-chan string, want string) {
	t.Helper()

	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("ticked %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no tick for %q", want)
	}
}

func drain(ch <-chan string) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

func TestDriverSync(t *testing.T) {
	ticks := make(chan string, 64)

	d := NewDriver(5*time.Millisecond, func(id string) {
		select {
		case ticks <- id:
		default:
		}
	})
	defer d.Close()

	if _, ok := d.Live(); ok {
		t.Fatal("new driver is live")
	}

	d.Sync("a", true)
	waitTick(t, ticks, "a")

	d.Sync("b", true)

	// at most one tick for the old key may already be in flight
	time.Sleep(20 * time.Millisecond)
	drain(ticks)

	waitTick(t, ticks, "b")

	d.Sync("b", false)

	if _, ok := d.Live(); ok {
		t.Error("driver is live for a paused session")
	}

	time.Sleep(20 * time.Millisecond)
	drain(ticks)
	time.Sleep(20 * time.Millisecond)

	select {
	case id := <-ticks:
		t.Errorf("ticked %q after the session was paused", id)
	default:
	}
}

func TestDriverClose(t *testing.T) {
	ticks := make(chan string, 64)

	d := NewDriver(5*time.Millisecond, func(id string) {
		select {
		case ticks <- id:
		default:
		}
	})

	d.Sync("a", true)
	waitTick(t, ticks, "a")

	d.Close()
	drain(ticks)

	d.Sync("a", true)

	if _, ok := d.Live(); ok {
		t.Error("closed driver restarted")
	}

	time.Sleep(20 * time.Millisecond)

	select {
	case <-ticks:
		t.Error("ticked after Close")
	default:
	}
}

func TestDriverSyncIsIdempotent(t *testing.T) {
	d := NewDriver(time.Hour, func(string) {})
	defer d.Close()

	d.Sync("a", true)
	d.Sync("a", true)

	id, ok := d.Live()
	if !ok || id != "a" {
		t.Errorf("Live() = %q, %v", id, ok)
	}
}
