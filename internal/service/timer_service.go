package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"pomodoro/solanum/internal/clock"
	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/sessionlog"
)

const tickInterval = time.Second

// Feedback plays a cue. Implementations must not block or fail the caller.
type Feedback interface {
	PlayStart()
	PlayComplete()
}

// Notifier schedules the out-of-band "session complete" notification.
// Both methods must be idempotent and safe with nothing pending.
type Notifier interface {
	ScheduleCompletion(sessionType model.SessionType, in time.Duration)
	CancelAll()
}

// SessionLog is the history the service appends finished sessions to.
type SessionLog interface {
	Append(record model.SessionRecord)
	Records() []model.SessionRecord
	Clear(ctx context.Context) error
}

type TimerDeps struct {
	Log      SessionLog
	Clock    clock.Clock
	Ticker   clock.Ticker
	Sound    Feedback
	Haptics  Feedback
	Notifier Notifier
	Logger   *slog.Logger
}

type TimerService struct {
	log      SessionLog
	clock    clock.Clock
	ticker   clock.Ticker
	sound    Feedback
	haptics  Feedback
	notifier Notifier
	logger   *slog.Logger

	mu          sync.Mutex
	settings    model.Settings
	status      model.Status
	remaining   int
	sessionType model.SessionType
	current     *model.InProgressSession
	focusCount  int
	untilLong   int
	project     string
	// tickGen invalidates callbacks from a ticker that was stopped.
	tickGen uint64

	// dispatchMu keeps effects of consecutive operations in order.
	dispatchMu sync.Mutex
	observers  map[int]func(Event)
	nextObsID  int
}

// StateView is a read-only snapshot of the timer.
type StateView struct {
	Status                  model.Status         `json:"status"`
	IsRunning               bool                 `json:"isRunning"`
	SessionType             model.SessionType    `json:"sessionType"`
	RemainingSeconds        int                  `json:"remainingSeconds"`
	DurationSeconds         int                  `json:"durationSeconds"`
	Progress                float64              `json:"progress"`
	Clock                   string               `json:"clock"`
	CurrentSession          *model.SessionRecord `json:"currentSession,omitempty"`
	CurrentProject          string               `json:"currentProject,omitempty"`
	FocusCompletionCount    int                  `json:"focusCompletionCount"`
	SessionsUntilLongBreak  int                  `json:"sessionsUntilLongBreak"`
	SessionsBeforeLongBreak int                  `json:"sessionsBeforeLongBreak"`
	Settings                model.Settings       `json:"settings"`
	Now                     time.Time            `json:"now"`
}

// NewTimerService builds an idle timer on a focus interval. The focus
// counter is restored from today's completed focus sessions in the log.
func NewTimerService(deps TimerDeps, settings model.Settings) *TimerService {
	if deps.Clock == nil {
		deps.Clock = clock.NewReal()
	}
	if deps.Ticker == nil {
		if ticker, ok := deps.Clock.(clock.Ticker); ok {
			deps.Ticker = ticker
		} else {
			deps.Ticker = clock.NewReal()
		}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	settings = settings.Normalized()
	s := &TimerService{
		log:         deps.Log,
		clock:       deps.Clock,
		ticker:      deps.Ticker,
		sound:       deps.Sound,
		haptics:     deps.Haptics,
		notifier:    deps.Notifier,
		logger:      deps.Logger,
		settings:    settings,
		status:      model.StatusIdle,
		sessionType: model.ModeFocus,
		project:     strings.TrimSpace(settings.DefaultProject),
		observers:   make(map[int]func(Event)),
	}
	s.remaining = s.durationForMode(s.sessionType)
	s.focusCount = s.todaysFocusCount()
	s.untilLong = sessionsUntilLongBreak(s.focusCount, settings.SessionsBeforeLongBreak)
	return s
}

func (s *TimerService) todaysFocusCount() int {
	if s.log == nil {
		return 0
	}
	today := sessionlog.Today(s.log.Records(), s.clock.Now())
	focus := sessionlog.FilterCompleted(sessionlog.FilterByType(today, model.ModeFocus), true)
	return len(focus)
}

// Subscribe registers fn for every subsequent event and returns a function
// that removes it. fn runs on the goroutine that caused the change and must
// not call back into the service synchronously.
func (s *TimerService) Subscribe(fn func(Event)) func() {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.nextObsID++
	id := s.nextObsID
	s.observers[id] = fn
	return func() {
		s.dispatchMu.Lock()
		defer s.dispatchMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *TimerService) State() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Start begins or resumes the countdown. No-op while running.
func (s *TimerService) Start() {
	s.do(func(fx *effects) {
		s.startLocked(fx)
	})
}

// Pause stops the countdown and cancels the pending completion
// notification. No-op unless running.
func (s *TimerService) Pause() {
	s.do(func(fx *effects) {
		if s.status != model.StatusRunning {
			return
		}
		s.haltLocked(fx)
		s.status = model.StatusPaused
		s.logger.Info("session paused", "session_type", s.sessionType, "remaining_seconds", s.remaining)
		s.emitLocked(fx, EventPaused, nil)
	})
}

// Tick advances the countdown by one second. No-op unless running.
func (s *TimerService) Tick() {
	s.do(func(fx *effects) {
		s.tickLocked(fx)
	})
}

func (s *TimerService) tickFrom(gen uint64) {
	s.do(func(fx *effects) {
		if gen != s.tickGen {
			return
		}
		s.tickLocked(fx)
	})
}

func (s *TimerService) tickLocked(fx *effects) {
	if s.status != model.StatusRunning {
		return
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.completeLocked(fx)
		return
	}
	s.emitLocked(fx, EventTick, nil)
}

// Skip abandons the current interval without recording it and moves on to
// the next session type.
func (s *TimerService) Skip() {
	s.do(func(fx *effects) {
		s.haltLocked(fx)
		skipped := s.sessionType
		if s.current != nil {
			s.logger.Info("session skipped", "session_id", s.current.ID(), "session_type", skipped)
		}
		s.current = nil
		s.status = model.StatusIdle
		s.rotateLocked(skipped, false)
		s.emitLocked(fx, EventSkipped, nil)
	})
}

// Reset discards the current interval and restores its full duration.
// Rotation counters are untouched.
func (s *TimerService) Reset() {
	s.do(func(fx *effects) {
		s.haltLocked(fx)
		s.current = nil
		s.status = model.StatusIdle
		s.remaining = s.durationForMode(s.sessionType)
		s.emitLocked(fx, EventReset, nil)
	})
}

// SetProject labels the current and following sessions. An empty name
// clears the label.
func (s *TimerService) SetProject(name string) {
	name = strings.TrimSpace(name)
	s.do(func(fx *effects) {
		s.project = name
		if s.current != nil {
			s.current.SetProject(name)
		}
		s.emitLocked(fx, EventProjectChanged, nil)
	})
}

// ApplySettings replaces the timer preferences. A stopped timer adopts the
// new duration of its session type; a running one keeps counting down,
// capped at the new duration.
func (s *TimerService) ApplySettings(settings model.Settings) {
	settings = settings.Normalized()
	s.do(func(fx *effects) {
		s.settings = settings
		duration := s.durationForMode(s.sessionType)
		if s.status != model.StatusRunning {
			s.remaining = duration
		} else if s.remaining > duration {
			s.remaining = duration
		}
		s.untilLong = sessionsUntilLongBreak(s.focusCount, settings.SessionsBeforeLongBreak)
		s.emitLocked(fx, EventSettingsChanged, nil)
	})
}

func (s *TimerService) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// ClearHistory empties the session log and the rotation counters.
func (s *TimerService) ClearHistory(ctx context.Context) error {
	var err error
	if s.log != nil {
		err = s.log.Clear(ctx)
	}
	s.do(func(fx *effects) {
		s.focusCount = 0
		s.untilLong = sessionsUntilLongBreak(0, s.settings.SessionsBeforeLongBreak)
		s.emitLocked(fx, EventHistoryCleared, nil)
	})
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Close stops tick delivery and drops pending notifications.
func (s *TimerService) Close() {
	s.do(func(fx *effects) {
		s.haltLocked(fx)
		if s.status == model.StatusRunning {
			s.status = model.StatusPaused
		}
	})
}

func (s *TimerService) do(fn func(fx *effects)) {
	var fx effects
	s.mu.Lock()
	fn(&fx)
	s.dispatchMu.Lock()
	s.mu.Unlock()
	defer s.dispatchMu.Unlock()
	fx.run()
}

func (s *TimerService) startLocked(fx *effects) {
	if s.status == model.StatusRunning {
		return
	}
	if s.remaining <= 0 {
		s.remaining = s.durationForMode(s.sessionType)
	}
	if s.current == nil {
		s.current = model.NewInProgressSession(s.sessionType, s.clock.Now(), s.project)
		s.logger.Info("session started",
			"session_id", s.current.ID(),
			"session_type", s.sessionType,
			"project", s.project,
		)
	}

	s.status = model.StatusRunning
	s.tickGen++
	gen := s.tickGen
	s.ticker.Start(tickInterval, func() { s.tickFrom(gen) })

	remaining := time.Duration(s.remaining) * time.Second
	sessionType := s.sessionType
	if s.settings.SoundEnabled && s.sound != nil {
		fx.add(s.sound.PlayStart)
	}
	if s.haptics != nil {
		fx.add(s.haptics.PlayStart)
	}
	if s.settings.NotificationsEnabled && s.notifier != nil {
		notifier := s.notifier
		fx.add(func() { notifier.ScheduleCompletion(sessionType, remaining) })
	}
	s.emitLocked(fx, EventStarted, nil)
}

// haltLocked stops tick delivery and cancels any scheduled notification.
func (s *TimerService) haltLocked(fx *effects) {
	s.tickGen++
	s.ticker.Stop()
	if s.notifier != nil {
		fx.add(s.notifier.CancelAll)
	}
}

func (s *TimerService) completeLocked(fx *effects) {
	s.haltLocked(fx)
	s.status = model.StatusIdle

	finished := s.sessionType
	if s.current != nil {
		record := s.current.Complete(s.clock.Now())
		s.current = nil
		if s.log != nil {
			s.log.Append(record)
		}
		if record.SessionType == model.ModeFocus {
			s.focusCount++
		}
		s.logger.Info("session completed",
			"session_id", record.ID,
			"session_type", record.SessionType,
			"duration", record.Duration(time.Time{}),
			"focus_count", s.focusCount,
		)
		s.rotateLocked(finished, true)

		if s.settings.SoundEnabled && s.sound != nil {
			fx.add(s.sound.PlayComplete)
		}
		if s.haptics != nil {
			fx.add(s.haptics.PlayComplete)
		}
		s.emitLocked(fx, EventCompleted, &record)
		s.emitLocked(fx, EventCelebrate, nil)
	} else {
		s.rotateLocked(finished, false)
	}

	if s.settings.AutoStartNextSession {
		s.startLocked(fx)
	}
}

func (s *TimerService) rotateLocked(prev model.SessionType, completed bool) {
	rotation := NextSessionType(prev, s.focusCount, s.settings.SessionsBeforeLongBreak, completed)
	s.sessionType = rotation.Next
	s.untilLong = rotation.SessionsUntilLongBreak
	s.remaining = s.durationForMode(rotation.Next)
}

func (s *TimerService) emitLocked(fx *effects, kind EventKind, record *model.SessionRecord) {
	event := Event{Kind: kind, State: s.stateLocked(), Record: record}
	fx.add(func() {
		for _, fn := range s.observers {
			fn(event)
		}
	})
}

func (s *TimerService) stateLocked() StateView {
	duration := s.durationForMode(s.sessionType)
	view := StateView{
		Status:                  s.status,
		IsRunning:               s.status == model.StatusRunning,
		SessionType:             s.sessionType,
		RemainingSeconds:        s.remaining,
		DurationSeconds:         duration,
		Clock:                   FormatClock(s.remaining),
		CurrentProject:          s.project,
		FocusCompletionCount:    s.focusCount,
		SessionsUntilLongBreak:  s.untilLong,
		SessionsBeforeLongBreak: s.settings.SessionsBeforeLongBreak,
		Settings:                s.settings,
		Now:                     s.clock.Now(),
	}
	if duration > 0 {
		view.Progress = 1 - float64(s.remaining)/float64(duration)
	}
	if s.current != nil {
		snapshot := s.current.Snapshot()
		view.CurrentSession = &snapshot
	}
	return view
}

func (s *TimerService) durationForMode(mode model.SessionType) int {
	return s.settings.DurationSeconds(mode)
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
