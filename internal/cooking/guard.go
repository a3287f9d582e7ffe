package cooking

import (
	"sync"
	"time"
)

// DefaultStopCooldown is how long a stop token is held after it is acquired.
const DefaultStopCooldown = 500 * time.Millisecond

// Guard hands out short-lived lock tokens per key. While a token is held,
// further acquisitions for the same key fail, which drops bursts of repeated
// actions. Tokens expire on their own after the cool-down.
type Guard struct {
	clock    Clock
	held     map[string]time.Time
	cooldown time.Duration
	mu       sync.Mutex
}

// Token is a lock acquired from a Guard.
type Token struct {
	expires time.Time
	g       *Guard
	key     string
}

// NewGuard creates a guard whose tokens last for cooldown.
func NewGuard(clock Clock, cooldown time.Duration) *Guard {
	if clock == nil {
		clock = SystemClock
	}

	return &Guard{
		clock:    clock,
		cooldown: cooldown,
		held:     make(map[string]time.Time),
	}
}

// Acquire takes the token for key. It reports false if a token for key is
// still held.
func (g *Guard) Acquire(key string) (Token, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()

	if exp, ok := g.held[key]; ok && now.Before(exp) {
		return Token{}, false
	}

	exp := now.Add(g.cooldown)
	g.held[key] = exp

	return Token{g: g, key: key, expires: exp}, true
}

// Held reports whether a token for key is currently held.
func (g *Guard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	exp, ok := g.held[key]

	return ok && g.clock.Now().Before(exp)
}

// Forget drops any token held for key.
func (g *Guard) Forget(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.held, key)
}

// Release gives the token back before its cool-down ends. Releasing a token
// that has been superseded is a no-op.
func (t Token) Release() {
	if t.g == nil {
		return
	}

	t.g.mu.Lock()
	defer t.g.mu.Unlock()

	if exp, ok := t.g.held[t.key]; ok && exp.Equal(t.expires) {
		delete(t.g.held, t.key)
	}
}
