package cooking

import "time"

// Session is the live progress of one recipe being cooked. Values returned
// by the Store and Controller are snapshots; mutating them has no effect.
type Session struct {
	// LastTickAt is when elapsed time was last applied.
	LastTickAt time.Time `json:"last_tick_at"`
	RecipeID   string    `json:"recipe_id"`
	// StepIndex is 0-based. StepCount marks a finished session.
	StepIndex        int  `json:"step_index"`
	StepCount        int  `json:"step_count"`
	StepRemaining    int  `json:"step_remaining_sec"`
	OverallRemaining int  `json:"overall_remaining_sec"`
	Running          bool `json:"is_running"`
	Complete         bool `json:"is_complete"`
}

// IsLastStep reports whether the session is on its final step.
func (s Session) IsLastStep() bool {
	return !s.Complete && s.StepIndex == s.StepCount-1
}

// StepsDone returns the number of finished steps. A step whose timer has
// reached zero counts as finished.
func (s Session) StepsDone() int {
	if s.Complete || s.StepIndex >= s.StepCount {
		return s.StepCount
	}

	done := s.StepIndex
	if s.StepRemaining == 0 {
		done++
	}

	return min(done, s.StepCount)
}

// Progress returns the fraction of finished steps in [0, 1].
func (s Session) Progress() float64 {
	if s.StepCount == 0 {
		if s.Complete {
			return 1
		}

		return 0
	}

	return float64(s.StepsDone()) / float64(s.StepCount)
}

func (s *Session) finish() {
	s.Running = false
	s.Complete = true
	s.StepIndex = s.StepCount
	s.StepRemaining = 0
	s.OverallRemaining = 0
}
