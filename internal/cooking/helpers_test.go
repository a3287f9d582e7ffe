package cooking

import (
	"sync"
	"time"

	"github.com/ayoisaiah/simmer/internal/apperr"
	"github.com/ayoisaiah/simmer/internal/recipe"
)

type fakeClock struct {
	now time.Time
	mu  sync.Mutex
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now: time.Date(2024, time.June, 1, 18, 0, 0, 0, time.UTC),
	}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

var errNoRecipe = &apperr.Error{Message: "recipe %s not found"}

type mapCatalog map[string]*recipe.Recipe

func (m mapCatalog) Get(id string) (*recipe.Recipe, error) {
	r, ok := m[id]
	if !ok {
		return nil, errNoRecipe.Fmt(id)
	}

	return r, nil
}

// newRecipe builds a recipe with one cooking step per duration in minutes.
func newRecipe(id string, mins ...int) *recipe.Recipe {
	r := &recipe.Recipe{
		ID:         id,
		Title:      "Recipe " + id,
		Difficulty: recipe.Easy,
	}

	for _, m := range mins {
		r.Steps = append(r.Steps, recipe.Step{
			ID:              id + "-step",
			Description:     "Cook",
			Kind:            recipe.Cooking,
			DurationMinutes: m,
			Settings:        &recipe.CookSettings{Temperature: 100, Speed: 2},
		})
	}

	return r
}

type recorder struct {
	events []Event
	mu     sync.Mutex
}

func (r *recorder) Notify(evt Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, evt)
}

// kinds returns the recorded event kinds, leaving out ticks.
func (r *recorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []EventKind

	for i := range r.events {
		if r.events[i].Kind != Ticked {
			out = append(out, r.events[i].Kind)
		}
	}

	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}
