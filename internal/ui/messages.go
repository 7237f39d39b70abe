package ui

import (
	"pomodoro/solanum/internal/feedback"
	"pomodoro/solanum/internal/service"
)

// EngineEventMsg carries a timer event into the program.
type EngineEventMsg struct {
	Event service.Event
}

// NotificationMsg carries a due completion notification.
type NotificationMsg struct {
	Notification feedback.Notification
}

type clearCelebrationMsg struct{ seq int }

type clearToastMsg struct{ seq int }

// bridgeClosedMsg is sent once the bridge is closed and drained.
type bridgeClosedMsg struct{}
