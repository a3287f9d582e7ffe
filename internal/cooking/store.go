// Package cooking implements the cooking session state machine: a Store that
// owns at most one active session, a Controller that applies recipe policy
// on top of it, and a Driver that ticks the running session once a second.
package cooking

import (
	"sync"
	"time"
)

// Store holds every cooking session keyed by recipe ID along with the single
// active recipe. Each method is atomic and returns a snapshot of the session
// after the operation.
type Store struct {
	clock    Clock
	sessions map[string]*Session
	active   string
	mu       sync.Mutex
}

// NewStore creates an empty session store. A nil clock reads the wall clock.
func NewStore(clock Clock) *Store {
	if clock == nil {
		clock = SystemClock
	}

	return &Store{
		clock:    clock,
		sessions: make(map[string]*Session),
	}
}

func (s *Store) get(recipeID string) (*Session, error) {
	sess, ok := s.sessions[recipeID]
	if !ok {
		return nil, ErrNotFound.Fmt(recipeID)
	}

	return sess, nil
}

// Start creates or resets the session for a recipe and makes it the active
// one. It fails with ErrConflict if a different recipe has an unfinished
// session. A finished session for another recipe is discarded.
func (s *Store) Start(recipeID string, totalSecs, stepCount int) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != "" && s.active != recipeID {
		if cur, ok := s.sessions[s.active]; ok && !cur.Complete {
			return Session{}, ErrConflict.Fmt(s.active)
		}

		delete(s.sessions, s.active)
	}

	sess := &Session{
		RecipeID:         recipeID,
		StepCount:        max(stepCount, 0),
		OverallRemaining: max(totalSecs, 0),
		LastTickAt:       s.clock.Now(),
	}

	s.sessions[recipeID] = sess
	s.active = recipeID

	return *sess, nil
}

// SetStep jumps to the step at index and resets its countdown.
func (s *Store) SetStep(recipeID string, index, stepSecs int) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(recipeID)
	if err != nil {
		return Session{}, err
	}

	if index < 0 || index >= sess.StepCount {
		return *sess, ErrStepOutOfRange.Fmt(index, sess.StepCount)
	}

	sess.StepIndex = index
	sess.StepRemaining = max(stepSecs, 0)
	sess.Complete = false
	sess.LastTickAt = s.clock.Now()

	return *sess, nil
}

// Play lets the tick source count down. It does nothing once complete.
func (s *Store) Play(recipeID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(recipeID)
	if err != nil {
		return Session{}, err
	}

	if sess.Complete {
		return *sess, nil
	}

	sess.Running = true
	sess.LastTickAt = s.clock.Now()

	return *sess, nil
}

// Pause stops the countdown.
func (s *Store) Pause(recipeID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(recipeID)
	if err != nil {
		return Session{}, err
	}

	sess.Running = false

	return *sess, nil
}

// Tick applies the whole seconds elapsed since the last applied tick to both
// countdowns, flooring each at zero.
func (s *Store) Tick(recipeID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(recipeID)
	if err != nil {
		return Session{}, err
	}

	if !sess.Running || sess.Complete {
		return *sess, nil
	}

	now := s.clock.Now()

	elapsed := int(now.Sub(sess.LastTickAt) / time.Second)
	if elapsed >= 1 {
		sess.StepRemaining = max(sess.StepRemaining-elapsed, 0)
		sess.OverallRemaining = max(sess.OverallRemaining-elapsed, 0)
		sess.LastTickAt = now
	}

	return *sess, nil
}

// Advance moves to the next step and keeps the countdown running.
func (s *Store) Advance(recipeID string, nextStepSecs int) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(recipeID)
	if err != nil {
		return Session{}, err
	}

	if sess.Complete {
		return *sess, nil
	}

	if sess.StepIndex+1 >= sess.StepCount {
		return *sess, ErrNoMoreSteps
	}

	sess.StepIndex++
	sess.StepRemaining = max(nextStepSecs, 0)
	sess.Running = true
	sess.LastTickAt = s.clock.Now()

	return *sess, nil
}

// Stop ends the current step early. On the last step the session completes;
// otherwise it moves to the next step with the supplied countdowns.
func (s *Store) Stop(
	recipeID string,
	isLastStep bool,
	nextStepSecs, overallAfterStop int,
) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(recipeID)
	if err != nil {
		return Session{}, err
	}

	if sess.Complete {
		return *sess, nil
	}

	if !isLastStep && sess.StepIndex+1 >= sess.StepCount {
		return *sess, ErrNoMoreSteps
	}

	sess.Running = false

	if isLastStep {
		sess.finish()
		return *sess, nil
	}

	sess.StepIndex++
	sess.StepRemaining = max(nextStepSecs, 0)
	sess.OverallRemaining = max(overallAfterStop, 0)
	sess.Running = true
	sess.LastTickAt = s.clock.Now()

	return *sess, nil
}

// Complete marks the session as finished after its final step expired.
func (s *Store) Complete(recipeID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(recipeID)
	if err != nil {
		return Session{}, err
	}

	sess.finish()

	return *sess, nil
}

// End removes the session. It is the only way a session is destroyed.
func (s *Store) End(recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(recipeID); err != nil {
		return err
	}

	delete(s.sessions, recipeID)

	if s.active == recipeID {
		s.active = ""
	}

	return nil
}

// Get returns the session for a recipe.
func (s *Store) Get(recipeID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(recipeID)
	if err != nil {
		return Session{}, err
	}

	return *sess, nil
}

// Active returns the session of the active recipe, if any.
func (s *Store) Active() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == "" {
		return Session{}, false
	}

	sess, ok := s.sessions[s.active]
	if !ok {
		return Session{}, false
	}

	return *sess, true
}
