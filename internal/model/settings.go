package model

import "time"

// Settings are the user-editable timer preferences.
type Settings struct {
	FocusMinutes            int    `yaml:"focusDuration" json:"focusDuration"`
	ShortBreakMinutes       int    `yaml:"shortBreakDuration" json:"shortBreakDuration"`
	LongBreakMinutes        int    `yaml:"longBreakDuration" json:"longBreakDuration"`
	SessionsBeforeLongBreak int    `yaml:"sessionsBeforeLongBreak" json:"sessionsBeforeLongBreak"`
	AutoStartNextSession    bool   `yaml:"autoStartNextSession" json:"autoStartNextSession"`
	SoundEnabled            bool   `yaml:"soundEnabled" json:"soundEnabled"`
	NotificationsEnabled    bool   `yaml:"notificationsEnabled" json:"notificationsEnabled"`
	DefaultProject          string `yaml:"defaultProject,omitempty" json:"defaultProject,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:            DefaultFocusMinutes,
		ShortBreakMinutes:       DefaultShortBreakMinutes,
		LongBreakMinutes:        DefaultLongBreakMinutes,
		SessionsBeforeLongBreak: DefaultSessionsBeforeLongBreak,
		SoundEnabled:            true,
		NotificationsEnabled:    true,
	}
}

// Upper bounds for settings. A day is the longest interval a timer runs.
const (
	MaxDurationMinutes         = 24 * 60
	MaxSessionsBeforeLongBreak = 100
)

// Normalized clamps out-of-range values instead of rejecting them.
func (s Settings) Normalized() Settings {
	s.FocusMinutes = ClampMinutes(s.FocusMinutes)
	s.ShortBreakMinutes = ClampMinutes(s.ShortBreakMinutes)
	s.LongBreakMinutes = ClampMinutes(s.LongBreakMinutes)
	s.SessionsBeforeLongBreak = ClampSessions(s.SessionsBeforeLongBreak)
	return s
}

// ClampMinutes bounds an interval length to [1, MaxDurationMinutes].
func ClampMinutes(minutes int) int {
	return clamp(minutes, MaxDurationMinutes)
}

// ClampSessions bounds the long break interval to [1, MaxSessionsBeforeLongBreak].
func ClampSessions(sessions int) int {
	return clamp(sessions, MaxSessionsBeforeLongBreak)
}

func clamp(v, hi int) int {
	return max(1, min(v, hi))
}

// Duration returns the nominal length of an interval of the given type.
func (s Settings) Duration(t SessionType) time.Duration {
	switch t {
	case ModeShortBreak:
		return time.Duration(s.ShortBreakMinutes) * time.Minute
	case ModeLongBreak:
		return time.Duration(s.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(s.FocusMinutes) * time.Minute
	}
}

func (s Settings) DurationSeconds(t SessionType) int {
	return int(s.Duration(t) / time.Second)
}
