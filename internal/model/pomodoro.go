package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionType string

const (
	ModeFocus      SessionType = "focus"
	ModeShortBreak SessionType = "short_break"
	ModeLongBreak  SessionType = "long_break"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

const (
	DefaultFocusMinutes            = 25
	DefaultShortBreakMinutes       = 5
	DefaultLongBreakMinutes        = 15
	DefaultSessionsBeforeLongBreak = 4
)

// SessionTypes lists every session type in rotation order.
var SessionTypes = []SessionType{ModeFocus, ModeShortBreak, ModeLongBreak}

func (t SessionType) Valid() bool {
	return t == ModeFocus || t == ModeShortBreak || t == ModeLongBreak
}

func (t SessionType) IsBreak() bool {
	return t == ModeShortBreak || t == ModeLongBreak
}

// Label is the human readable name shown in history and notifications.
func (t SessionType) Label() string {
	switch t {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

func (t SessionType) Emoji() string {
	switch t {
	case ModeShortBreak:
		return "☕️"
	case ModeLongBreak:
		return "🌙"
	default:
		return "🍅"
	}
}

// ParseSessionType accepts the wire value or the label, case-sensitive on the wire value.
func ParseSessionType(raw string) (SessionType, bool) {
	switch raw {
	case string(ModeFocus), "Focus":
		return ModeFocus, true
	case string(ModeShortBreak), "Short Break", "short":
		return ModeShortBreak, true
	case string(ModeLongBreak), "Long Break", "long":
		return ModeLongBreak, true
	}
	return "", false
}

// SessionRecord is a finished session as stored in the session log.
type SessionRecord struct {
	ID          string      `json:"id"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     *time.Time  `json:"endTime,omitempty"`
	SessionType SessionType `json:"sessionType"`
	ProjectName *string     `json:"projectName,omitempty"`
	IsCompleted bool        `json:"isCompleted"`
}

func (r SessionRecord) IsActive() bool {
	return r.EndTime == nil
}

// Duration is EndTime-StartTime for a finished record, now-StartTime otherwise.
func (r SessionRecord) Duration(now time.Time) time.Duration {
	if r.EndTime == nil {
		return now.Sub(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

func (r SessionRecord) Project() string {
	if r.ProjectName == nil {
		return ""
	}
	return *r.ProjectName
}

// InProgressSession is a running or paused session that has not been finalized.
// It carries no end time or completion flag; Complete is the only way to
// obtain a SessionRecord from it.
type InProgressSession struct {
	id          string
	startTime   time.Time
	sessionType SessionType
	projectName string
}

func NewInProgressSession(sessionType SessionType, startTime time.Time, projectName string) *InProgressSession {
	return &InProgressSession{
		id:          uuid.NewString(),
		startTime:   startTime,
		sessionType: sessionType,
		projectName: projectName,
	}
}

func (s *InProgressSession) ID() string               { return s.id }
func (s *InProgressSession) StartTime() time.Time     { return s.startTime }
func (s *InProgressSession) SessionType() SessionType { return s.sessionType }
func (s *InProgressSession) ProjectName() string      { return s.projectName }

func (s *InProgressSession) SetProject(name string) {
	s.projectName = name
}

// Snapshot returns the session as an active record for display.
func (s *InProgressSession) Snapshot() SessionRecord {
	return SessionRecord{
		ID:          s.id,
		StartTime:   s.startTime,
		SessionType: s.sessionType,
		ProjectName: optionalString(s.projectName),
	}
}

// Complete freezes the session into a completed record ending at now.
func (s *InProgressSession) Complete(now time.Time) SessionRecord {
	if now.Before(s.startTime) {
		now = s.startTime
	}
	end := now
	record := s.Snapshot()
	record.EndTime = &end
	record.IsCompleted = true
	return record
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
