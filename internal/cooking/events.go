package cooking

// EventKind identifies what happened to a session.
type EventKind int

const (
	StepStarted EventKind = iota
	StepCompleted
	SessionComplete
	SessionConflict
	Ticked
	Paused
	Resumed
	SessionEnded
)

func (k EventKind) String() string {
	switch k {
	case StepStarted:
		return "step_started"
	case StepCompleted:
		return "step_completed"
	case SessionComplete:
		return "session_complete"
	case SessionConflict:
		return "session_conflict"
	case Ticked:
		return "ticked"
	case Paused:
		return "paused"
	case Resumed:
		return "resumed"
	case SessionEnded:
		return "session_ended"
	default:
		return "unknown"
	}
}

// Event is published by the Controller after every transition.
type Event struct {
	Err         error
	RecipeID    string
	Title       string
	Description string // description of the step the event refers to
	Session     Session
	Kind        EventKind
	Step        int // 0-based index of the step the event refers to
	StepCount   int // number of steps in the recipe
	// Stopped is set on StepCompleted when the user ended the step early.
	Stopped bool
}

// Notifier receives session events. Notify is called without any Controller
// lock held, so implementations may call back into the Controller.
type Notifier interface {
	Notify(evt Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(evt Event)

func (f NotifierFunc) Notify(evt Event) {
	f(evt)
}
