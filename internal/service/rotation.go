package service

import "pomodoro/solanum/internal/model"

// Rotation is the outcome of choosing the interval that follows another.
type Rotation struct {
	Next                   model.SessionType
	SessionsUntilLongBreak int
}

// NextSessionType picks the session after prev ended. focusCount is the
// number of completed focus sessions including prev when prev completed.
// Only a completed focus session can earn a long break, so a fresh counter
// or a skipped focus session always leads to a short break.
func NextSessionType(prev model.SessionType, focusCount, sessionsBeforeLongBreak int, completed bool) Rotation {
	n := sessionsBeforeLongBreak
	if n < 1 {
		n = 1
	}
	if focusCount < 0 {
		focusCount = 0
	}
	remainder := focusCount % n

	if prev.IsBreak() {
		return Rotation{Next: model.ModeFocus, SessionsUntilLongBreak: n - remainder}
	}

	if completed && focusCount > 0 && remainder == 0 {
		return Rotation{Next: model.ModeLongBreak, SessionsUntilLongBreak: n}
	}
	return Rotation{Next: model.ModeShortBreak, SessionsUntilLongBreak: n - remainder}
}

// sessionsUntilLongBreak is the display counter implied by a focus count.
func sessionsUntilLongBreak(focusCount, sessionsBeforeLongBreak int) int {
	n := sessionsBeforeLongBreak
	if n < 1 {
		n = 1
	}
	left := n - focusCount%n
	if left < 1 {
		left = 1
	}
	return left
}
