package cooking

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/simmer/internal/recipe"
)

// Catalog resolves recipes by ID.
type Catalog interface {
	Get(id string) (*recipe.Recipe, error)
}

// Controller applies recipe policy on top of the session Store. It is the
// only component that advances a session when a step timer expires.
type Controller struct {
	clock     Clock
	catalog   Catalog
	store     *Store
	guard     *Guard
	driver    *Driver
	logger    *slog.Logger
	recipes   map[string]*recipe.Recipe
	latch     map[string]int // step index whose expiry was already handled
	notifiers []Notifier
	cooldown  time.Duration
	interval  time.Duration
	mu        sync.Mutex
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used by the stop guard.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithStopCooldown sets how long repeated stop requests are ignored for.
func WithStopCooldown(d time.Duration) Option {
	return func(c *Controller) {
		c.cooldown = d
	}
}

// WithDriver makes the Controller tick the running session every interval.
// Without it, the caller is responsible for calling Tick.
func WithDriver(interval time.Duration) Option {
	return func(c *Controller) {
		c.interval = interval
	}
}

// WithLogger sets the logger used to record transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithNotifier registers a sink for session events.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.notifiers = append(c.notifiers, n)
	}
}

// NewController creates a Controller for the given store and catalog.
func NewController(store *Store, catalog Catalog, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		catalog:  catalog,
		cooldown: DefaultStopCooldown,
		recipes:  make(map[string]*recipe.Recipe),
		latch:    make(map[string]int),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.clock == nil {
		c.clock = SystemClock
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	c.guard = NewGuard(c.clock, c.cooldown)

	if c.interval > 0 {
		c.driver = NewDriver(c.interval, func(recipeID string) {
			if err := c.Tick(recipeID); err != nil {
				c.logger.Error("tick failed", "recipe_id", recipeID, "error", err)
			}
		})
	}

	return c
}

type txn struct {
	events []Event
}

// do runs fn under the Controller lock, then syncs the driver and publishes
// the collected events after the lock is released.
func (c *Controller) do(fn func(t *txn) error) error {
	t := &txn{}

	c.mu.Lock()

	err := fn(t)

	if c.driver != nil {
		active, ok := c.store.Active()
		if ok {
			c.driver.Sync(active.RecipeID, active.Running && !active.Complete)
		} else {
			c.driver.Sync("", false)
		}
	}

	c.mu.Unlock()

	for i := range t.events {
		c.log(t.events[i])

		for _, n := range c.notifiers {
			n.Notify(t.events[i])
		}
	}

	return err
}

func (c *Controller) log(evt Event) {
	attrs := []any{
		"event", evt.Kind.String(),
		"recipe_id", evt.RecipeID,
		"step", evt.Step,
		"remaining", evt.Session.StepRemaining,
	}

	switch evt.Kind {
	case Ticked:
		c.logger.Debug("session ticked", attrs...)
	case SessionConflict:
		c.logger.Warn("session conflict", append(attrs, "error", evt.Err)...)
	default:
		c.logger.Info("session "+evt.Kind.String(), attrs...)
	}
}

func (c *Controller) emit(t *txn, kind EventKind, sess Session, step int) {
	evt := Event{
		Kind:     kind,
		RecipeID: sess.RecipeID,
		Session:  sess,
		Step:     step,
	}

	if r, ok := c.recipes[sess.RecipeID]; ok {
		evt.Title = r.Title
		evt.StepCount = len(r.Steps)

		if step >= 0 && step < len(r.Steps) {
			evt.Description = r.Steps[step].Description
		}
	}

	t.events = append(t.events, evt)
}

func (c *Controller) forget(recipeID string) {
	delete(c.recipes, recipeID)
	delete(c.latch, recipeID)
	c.guard.Forget(recipeID)
}

// recipe returns the copy of the recipe taken when its session started.
func (c *Controller) recipe(recipeID string) (*recipe.Recipe, error) {
	if r, ok := c.recipes[recipeID]; ok {
		return r, nil
	}

	r, err := c.catalog.Get(recipeID)
	if err != nil {
		return nil, err
	}

	r = r.Clone()
	c.recipes[recipeID] = r

	return r, nil
}

// Initiate starts cooking a recipe. It has no effect if the recipe already
// has a session. If a different recipe is still cooking, a SessionConflict
// event is published and ErrConflict is returned.
func (c *Controller) Initiate(recipeID string) (Session, error) {
	var sess Session

	err := c.do(func(t *txn) error {
		var err error

		sess, err = c.initiate(t, recipeID)

		return err
	})

	return sess, err
}

func (c *Controller) initiate(t *txn, recipeID string) (Session, error) {
	if sess, err := c.store.Get(recipeID); err == nil {
		return sess, nil
	}

	r, err := c.catalog.Get(recipeID)
	if err != nil {
		return Session{}, err
	}

	r = r.Clone()

	prev, hadPrev := c.store.Active()

	sess, err := c.store.Start(recipeID, r.TotalSecs(), len(r.Steps))
	if err != nil {
		if errors.Is(err, ErrConflict) {
			t.events = append(t.events, Event{
				Kind:     SessionConflict,
				RecipeID: recipeID,
				Title:    r.Title,
				Session:  prev,
				Err:      err,
			})
		}

		return Session{}, err
	}

	if hadPrev && prev.RecipeID != recipeID {
		c.forget(prev.RecipeID)
	}

	c.recipes[recipeID] = r
	delete(c.latch, recipeID)

	if len(r.Steps) == 0 {
		sess, err = c.store.Complete(recipeID)
		if err != nil {
			return Session{}, err
		}

		c.emit(t, SessionComplete, sess, 0)

		return sess, nil
	}

	sess, err = c.store.SetStep(recipeID, 0, r.Steps[0].DurationSecs())
	if err != nil {
		return Session{}, err
	}

	sess, err = c.store.Play(recipeID)
	if err != nil {
		return Session{}, err
	}

	c.emit(t, StepStarted, sess, 0)

	return sess, nil
}

// Tick applies elapsed time to the session and advances it if the current
// step has expired. A missing session is ignored since ticks may arrive
// after the session has ended.
func (c *Controller) Tick(recipeID string) error {
	return c.do(func(t *txn) error {
		before, err := c.store.Get(recipeID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}

			return err
		}

		sess, err := c.store.Tick(recipeID)
		if err != nil {
			return err
		}

		if !sess.LastTickAt.Equal(before.LastTickAt) {
			c.emit(t, Ticked, sess, sess.StepIndex)
		}

		return c.evaluate(t, sess)
	})
}

// Evaluate advances the session if its current step has expired without
// applying any elapsed time.
func (c *Controller) Evaluate(recipeID string) error {
	return c.do(func(t *txn) error {
		sess, err := c.store.Get(recipeID)
		if err != nil {
			return err
		}

		return c.evaluate(t, sess)
	})
}

// evaluate handles the expiry of the current step at most once per step.
func (c *Controller) evaluate(t *txn, sess Session) error {
	if sess.Complete || !sess.Running {
		return nil
	}

	id := sess.RecipeID

	if sess.StepRemaining > 0 {
		delete(c.latch, id)
		return nil
	}

	if idx, ok := c.latch[id]; ok && idx == sess.StepIndex {
		return nil
	}

	c.latch[id] = sess.StepIndex

	r, err := c.recipe(id)
	if err != nil {
		return err
	}

	step := sess.StepIndex
	c.emit(t, StepCompleted, sess, step)

	if sess.IsLastStep() {
		sess, err = c.store.Complete(id)
		if err != nil {
			return err
		}

		c.emit(t, SessionComplete, sess, step)

		return nil
	}

	sess, err = c.store.Advance(id, r.Steps[step+1].DurationSecs())
	if err != nil {
		return err
	}

	c.emit(t, StepStarted, sess, sess.StepIndex)

	return nil
}

// Skip moves to the next step without completing the current one.
func (c *Controller) Skip(recipeID string) (Session, error) {
	var sess Session

	err := c.do(func(t *txn) error {
		var err error

		sess, err = c.store.Get(recipeID)
		if err != nil || sess.Complete {
			return err
		}

		if sess.IsLastStep() {
			return ErrNoMoreSteps
		}

		r, err := c.recipe(recipeID)
		if err != nil {
			return err
		}

		sess, err = c.store.Advance(
			recipeID,
			r.Steps[sess.StepIndex+1].DurationSecs(),
		)
		if err != nil {
			return err
		}

		delete(c.latch, recipeID)
		c.emit(t, StepStarted, sess, sess.StepIndex)

		return nil
	})

	return sess, err
}

// StopStep ends the current step early. Calls made while a previous stop is
// still cooling down are dropped and return the current session unchanged.
func (c *Controller) StopStep(recipeID string) (Session, error) {
	var sess Session

	err := c.do(func(t *txn) error {
		var err error

		tok, ok := c.guard.Acquire(recipeID)
		if !ok {
			c.logger.Debug("stop dropped", "recipe_id", recipeID)

			sess, err = c.store.Get(recipeID)

			return err
		}

		sess, err = c.store.Get(recipeID)
		if err != nil {
			tok.Release()
			return err
		}

		if sess.Complete {
			return nil
		}

		r, err := c.recipe(recipeID)
		if err != nil {
			tok.Release()
			return err
		}

		step := sess.StepIndex
		isLast := sess.IsLastStep()

		var next int
		if !isLast {
			next = r.Steps[step+1].DurationSecs()
		}

		sess, err = c.store.Stop(recipeID, isLast, next, r.SecsAfter(step))
		if err != nil {
			tok.Release()
			return err
		}

		delete(c.latch, recipeID)

		c.emit(t, StepCompleted, sess, step)
		t.events[len(t.events)-1].Stopped = true

		if sess.Complete {
			c.emit(t, SessionComplete, sess, step)
		} else {
			c.emit(t, StepStarted, sess, sess.StepIndex)
		}

		return nil
	})

	return sess, err
}

// StopLocked reports whether stop requests for the recipe are currently
// being dropped.
func (c *Controller) StopLocked(recipeID string) bool {
	return c.guard.Held(recipeID)
}

// TogglePlay pauses a running session or resumes a paused one.
func (c *Controller) TogglePlay(recipeID string) (Session, error) {
	var sess Session

	err := c.do(func(t *txn) error {
		var err error

		sess, err = c.store.Get(recipeID)
		if err != nil {
			return err
		}

		if sess.Running {
			sess, err = c.pause(t, recipeID)
		} else {
			sess, err = c.play(t, recipeID)
		}

		return err
	})

	return sess, err
}

// Play resumes the session.
func (c *Controller) Play(recipeID string) (Session, error) {
	var sess Session

	err := c.do(func(t *txn) error {
		var err error

		sess, err = c.play(t, recipeID)

		return err
	})

	return sess, err
}

// Pause halts the countdown.
func (c *Controller) Pause(recipeID string) (Session, error) {
	var sess Session

	err := c.do(func(t *txn) error {
		var err error

		sess, err = c.pause(t, recipeID)

		return err
	})

	return sess, err
}

// Exit pauses the session so that it can be resumed later.
func (c *Controller) Exit(recipeID string) (Session, error) {
	return c.Pause(recipeID)
}

func (c *Controller) play(t *txn, recipeID string) (Session, error) {
	before, err := c.store.Get(recipeID)
	if err != nil {
		return Session{}, err
	}

	if before.Complete || before.Running {
		return before, nil
	}

	sess, err := c.store.Play(recipeID)
	if err != nil {
		return Session{}, err
	}

	c.emit(t, Resumed, sess, sess.StepIndex)

	return sess, nil
}

func (c *Controller) pause(t *txn, recipeID string) (Session, error) {
	before, err := c.store.Get(recipeID)
	if err != nil {
		return Session{}, err
	}

	if before.Complete || !before.Running {
		return before, nil
	}

	sess, err := c.store.Pause(recipeID)
	if err != nil {
		return Session{}, err
	}

	c.emit(t, Paused, sess, sess.StepIndex)

	return sess, nil
}

// Restart discards the session and cooks the recipe again from the first
// step.
func (c *Controller) Restart(recipeID string) (Session, error) {
	var sess Session

	err := c.do(func(t *txn) error {
		if err := c.end(t, recipeID); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		var err error

		sess, err = c.initiate(t, recipeID)

		return err
	})

	return sess, err
}

// End destroys the session.
func (c *Controller) End(recipeID string) error {
	return c.do(func(t *txn) error {
		return c.end(t, recipeID)
	})
}

func (c *Controller) end(t *txn, recipeID string) error {
	sess, err := c.store.Get(recipeID)
	if err != nil {
		return err
	}

	c.emit(t, SessionEnded, sess, sess.StepIndex)

	if err := c.store.End(recipeID); err != nil {
		return err
	}

	c.forget(recipeID)

	return nil
}

// Session returns the session for a recipe.
func (c *Controller) Session(recipeID string) (Session, error) {
	return c.store.Get(recipeID)
}

// Active returns the session of the recipe currently cooking, if any.
func (c *Controller) Active() (Session, bool) {
	return c.store.Active()
}

// Recipe returns a copy of the recipe a session was started with.
func (c *Controller) Recipe(recipeID string) (*recipe.Recipe, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.recipes[recipeID]
	if !ok {
		return nil, false
	}

	return r.Clone(), true
}

// Close stops the tick driver. It must not be called from a Notifier.
func (c *Controller) Close() {
	if c.driver != nil {
		c.driver.Close()
	}
}
