package service

import "pomodoro/solanum/internal/model"

type EventKind string

const (
	EventStarted         EventKind = "started"
	EventPaused          EventKind = "paused"
	EventTick            EventKind = "tick"
	EventCompleted       EventKind = "completed"
	EventCelebrate       EventKind = "celebrate"
	EventSkipped         EventKind = "skipped"
	EventReset           EventKind = "reset"
	EventProjectChanged  EventKind = "project_changed"
	EventSettingsChanged EventKind = "settings_changed"
	EventHistoryCleared  EventKind = "history_cleared"
)

// Event is delivered to subscribers after every state change.
// Record is set for EventCompleted only.
type Event struct {
	Kind   EventKind
	State  StateView
	Record *model.SessionRecord
}

// effects collects collaborator calls and observer notifications made while
// the service lock is held so they run after it is released.
type effects struct {
	calls []func()
}

func (e *effects) add(fn func()) {
	e.calls = append(e.calls, fn)
}

func (e *effects) run() {
	for _, fn := range e.calls {
		fn()
	}
}
