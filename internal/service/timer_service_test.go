package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/solanum/internal/clock"
	"pomodoro/solanum/internal/db"
	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/repository"
	"pomodoro/solanum/internal/sessionlog"
)

var testStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fakeFeedback struct {
	mu        sync.Mutex
	starts    int
	completes int
}

func (f *fakeFeedback) PlayStart() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
}

func (f *fakeFeedback) PlayComplete() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completes++
}

func (f *fakeFeedback) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts, f.completes
}

type scheduled struct {
	sessionType model.SessionType
	in          time.Duration
}

type fakeNotifier struct {
	mu        sync.Mutex
	scheduled []scheduled
	pending   int
	cancels   int
}

func (n *fakeNotifier) ScheduleCompletion(sessionType model.SessionType, in time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.scheduled = append(n.scheduled, scheduled{sessionType: sessionType, in: in})
	n.pending++
}

func (n *fakeNotifier) CancelAll() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = 0
	n.cancels++
}

func (n *fakeNotifier) snapshot() ([]scheduled, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]scheduled(nil), n.scheduled...), n.pending
}

type fakeLog struct {
	mu       sync.Mutex
	records  []model.SessionRecord
	clearErr error
}

func (l *fakeLog) Append(record model.SessionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
}

func (l *fakeLog) Records() []model.SessionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.SessionRecord(nil), l.records...)
}

func (l *fakeLog) Clear(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
	return l.clearErr
}

type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kinds []EventKind
	for _, e := range r.events {
		if e.Kind != EventTick {
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}

func (r *eventRecorder) count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

type timerFixture struct {
	svc      *TimerService
	clock    *clock.Manual
	log      *fakeLog
	sound    *fakeFeedback
	haptics  *fakeFeedback
	notifier *fakeNotifier
	events   *eventRecorder
}

func newTimerFixture(t *testing.T, settings model.Settings, history ...model.SessionRecord) *timerFixture {
	t.Helper()
	f := &timerFixture{
		clock:    clock.NewManual(testStart),
		log:      &fakeLog{records: history},
		sound:    &fakeFeedback{},
		haptics:  &fakeFeedback{},
		notifier: &fakeNotifier{},
		events:   &eventRecorder{},
	}
	f.svc = NewTimerService(TimerDeps{
		Log:      f.log,
		Clock:    f.clock,
		Ticker:   f.clock,
		Sound:    f.sound,
		Haptics:  f.haptics,
		Notifier: f.notifier,
	}, settings)
	t.Cleanup(f.svc.Subscribe(f.events.record))
	t.Cleanup(f.svc.Close)
	return f
}

// quickSettings uses one-minute intervals so a full rotation stays short.
func quickSettings() model.Settings {
	settings := model.DefaultSettings()
	settings.FocusMinutes = 1
	settings.ShortBreakMinutes = 1
	settings.LongBreakMinutes = 1
	return settings
}

func (f *timerFixture) runInterval() {
	f.svc.Start()
	f.clock.Ticks(f.svc.State().RemainingSeconds)
}

func completedAt(sessionType model.SessionType, start time.Time, d time.Duration) model.SessionRecord {
	record := model.NewInProgressSession(sessionType, start, "")
	return record.Complete(start.Add(d))
}

func TestNewTimerStartsIdleOnFocus(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	state := f.svc.State()
	assert.Equal(t, model.StatusIdle, state.Status)
	assert.Equal(t, model.ModeFocus, state.SessionType)
	assert.Equal(t, 1500, state.RemainingSeconds)
	assert.Equal(t, "25:00", state.Clock)
	assert.Zero(t, state.Progress)
	assert.Nil(t, state.CurrentSession)
	assert.Zero(t, state.FocusCompletionCount)
	assert.Equal(t, 4, state.SessionsUntilLongBreak)
}

func TestFullFocusSessionCompletes(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Start()
	sessionID := f.svc.State().CurrentSession.ID
	f.clock.Ticks(1500)

	state := f.svc.State()
	assert.Equal(t, model.ModeShortBreak, state.SessionType)
	assert.Equal(t, 300, state.RemainingSeconds)
	assert.Equal(t, model.StatusIdle, state.Status)
	assert.Equal(t, 1, state.FocusCompletionCount)
	assert.Equal(t, 3, state.SessionsUntilLongBreak)
	assert.Nil(t, state.CurrentSession)
	assert.False(t, f.clock.Running())

	records := f.log.Records()
	require.Len(t, records, 1)
	assert.Equal(t, sessionID, records[0].ID)
	assert.Equal(t, model.ModeFocus, records[0].SessionType)
	assert.True(t, records[0].IsCompleted)
	require.NotNil(t, records[0].EndTime)
	assert.Equal(t, 1500*time.Second, records[0].Duration(time.Time{}))

	starts, completes := f.sound.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, completes)

	notes, pending := f.notifier.snapshot()
	require.Len(t, notes, 1)
	assert.Equal(t, scheduled{sessionType: model.ModeFocus, in: 1500 * time.Second}, notes[0])
	assert.Zero(t, pending)

	assert.Equal(t, []EventKind{EventStarted, EventCompleted, EventCelebrate}, f.events.kinds())
	assert.Equal(t, 1499, f.events.count(EventTick))
}

func TestCompletedEventCarriesRecord(t *testing.T) {
	f := newTimerFixture(t, quickSettings())

	f.runInterval()

	f.events.mu.Lock()
	defer f.events.mu.Unlock()
	var completed *Event
	for i := range f.events.events {
		if f.events.events[i].Kind == EventCompleted {
			completed = &f.events.events[i]
		}
	}
	require.NotNil(t, completed)
	require.NotNil(t, completed.Record)
	assert.Equal(t, f.log.Records()[0], *completed.Record)
	assert.Equal(t, model.ModeShortBreak, completed.State.SessionType)
}

func TestRotationEarnsLongBreakEveryNFocusSessions(t *testing.T) {
	f := newTimerFixture(t, quickSettings())

	for cycle := 1; cycle <= 2; cycle++ {
		for i := 1; i <= 4; i++ {
			require.Equal(t, model.ModeFocus, f.svc.State().SessionType)
			f.runInterval()

			state := f.svc.State()
			if i < 4 {
				assert.Equal(t, model.ModeShortBreak, state.SessionType, "cycle %d session %d", cycle, i)
				assert.Equal(t, 4-i, state.SessionsUntilLongBreak)
			} else {
				assert.Equal(t, model.ModeLongBreak, state.SessionType, "cycle %d session %d", cycle, i)
				assert.Equal(t, 4, state.SessionsUntilLongBreak)
			}

			f.runInterval()
			assert.Equal(t, model.ModeFocus, f.svc.State().SessionType)
		}
	}

	records := f.log.Records()
	assert.Len(t, records, 16)
	assert.Equal(t, 8, f.svc.State().FocusCompletionCount)
}

func TestEveryLogRecordIsCompleted(t *testing.T) {
	f := newTimerFixture(t, quickSettings())

	f.runInterval()
	f.svc.Start()
	f.clock.Ticks(10)
	f.svc.Skip()
	f.runInterval()
	f.svc.Start()
	f.svc.Reset()

	for _, record := range f.log.Records() {
		assert.True(t, record.IsCompleted)
		require.NotNil(t, record.EndTime)
		assert.False(t, record.EndTime.Before(record.StartTime))
	}
}

func TestSkipNeverAppends(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Start()
	f.clock.Ticks(10)
	f.svc.Skip()

	state := f.svc.State()
	assert.Empty(t, f.log.Records())
	assert.Equal(t, model.ModeShortBreak, state.SessionType)
	assert.Equal(t, 300, state.RemainingSeconds)
	assert.Equal(t, model.StatusIdle, state.Status)
	assert.Zero(t, state.FocusCompletionCount)
	assert.Nil(t, state.CurrentSession)
	assert.False(t, f.clock.Running())

	_, pending := f.notifier.snapshot()
	assert.Zero(t, pending)
}

func TestSkippedBreakReturnsToFocus(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Skip()
	require.Equal(t, model.ModeShortBreak, f.svc.State().SessionType)
	f.svc.Skip()

	state := f.svc.State()
	assert.Equal(t, model.ModeFocus, state.SessionType)
	assert.Equal(t, 1500, state.RemainingSeconds)
	assert.Empty(t, f.log.Records())
}

func TestPauseIsIdempotent(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Start()
	f.clock.Ticks(5)
	f.svc.Pause()
	first := f.svc.State()
	f.svc.Pause()
	second := f.svc.State()

	assert.Equal(t, model.StatusPaused, second.Status)
	assert.Equal(t, 1495, second.RemainingSeconds)
	assert.Equal(t, first.CurrentSession, second.CurrentSession)
	assert.Equal(t, 1, f.events.count(EventPaused))

	f.clock.Ticks(30)
	assert.Equal(t, 1495, f.svc.State().RemainingSeconds)
}

func TestPauseBeforeStartDoesNothing(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Pause()

	assert.Equal(t, model.StatusIdle, f.svc.State().Status)
	assert.Zero(t, f.events.count(EventPaused))
}

func TestResumeKeepsSessionAndReschedulesNotification(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Start()
	sessionID := f.svc.State().CurrentSession.ID
	f.clock.Ticks(100)
	f.svc.Pause()
	f.svc.Start()

	state := f.svc.State()
	assert.Equal(t, model.StatusRunning, state.Status)
	require.NotNil(t, state.CurrentSession)
	assert.Equal(t, sessionID, state.CurrentSession.ID)
	assert.Equal(t, testStart, state.CurrentSession.StartTime)

	notes, pending := f.notifier.snapshot()
	require.Len(t, notes, 2)
	assert.Equal(t, 1400*time.Second, notes[1].in)
	assert.Equal(t, 1, pending)
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Start()
	f.clock.Ticks(3)
	f.svc.Start()

	assert.Equal(t, 1, f.clock.Starts())
	assert.Equal(t, 1497, f.svc.State().RemainingSeconds)
	assert.Equal(t, 1, f.events.count(EventStarted))
}

func TestResetMidCountdown(t *testing.T) {
	f := newTimerFixture(t, quickSettings())

	f.runInterval()
	f.runInterval()
	f.svc.Start()
	f.clock.Ticks(20)
	before := f.svc.State()
	f.svc.Reset()

	state := f.svc.State()
	assert.Equal(t, model.StatusIdle, state.Status)
	assert.Equal(t, model.ModeFocus, state.SessionType)
	assert.Equal(t, 60, state.RemainingSeconds)
	assert.Nil(t, state.CurrentSession)
	assert.Equal(t, before.FocusCompletionCount, state.FocusCompletionCount)
	assert.Equal(t, before.SessionsUntilLongBreak, state.SessionsUntilLongBreak)
	assert.Len(t, f.log.Records(), 2)
	assert.False(t, f.clock.Running())

	_, pending := f.notifier.snapshot()
	assert.Zero(t, pending)
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Tick()
	assert.Equal(t, 1500, f.svc.State().RemainingSeconds)

	f.svc.Start()
	f.svc.Tick()
	f.svc.Pause()
	f.svc.Tick()
	assert.Equal(t, 1499, f.svc.State().RemainingSeconds)
}

func TestStaleTickerCallbackIsIgnored(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Start()
	f.svc.mu.Lock()
	stale := f.svc.tickGen
	f.svc.mu.Unlock()

	f.svc.Pause()
	f.svc.Start()
	f.svc.tickFrom(stale)

	assert.Equal(t, 1500, f.svc.State().RemainingSeconds)
}

func TestRemainingStaysWithinDuration(t *testing.T) {
	f := newTimerFixture(t, quickSettings())

	f.svc.Start()
	for i := 0; i < 200; i++ {
		f.svc.Tick()
		state := f.svc.State()
		assert.GreaterOrEqual(t, state.RemainingSeconds, 0)
		assert.LessOrEqual(t, state.RemainingSeconds, state.DurationSeconds)
		assert.GreaterOrEqual(t, state.Progress, 0.0)
		assert.LessOrEqual(t, state.Progress, 1.0)
		if state.Status != model.StatusRunning {
			f.svc.Start()
		}
	}
}

func TestAutoStartNextSession(t *testing.T) {
	settings := quickSettings()
	settings.AutoStartNextSession = true
	f := newTimerFixture(t, settings)

	f.svc.Start()
	f.clock.Ticks(60)

	state := f.svc.State()
	assert.Equal(t, model.StatusRunning, state.Status)
	assert.Equal(t, model.ModeShortBreak, state.SessionType)
	require.NotNil(t, state.CurrentSession)
	assert.Equal(t, model.ModeShortBreak, state.CurrentSession.SessionType)
	assert.Equal(t, 2, f.clock.Starts())

	f.clock.Ticks(60)
	assert.Equal(t, model.ModeFocus, f.svc.State().SessionType)
	assert.Len(t, f.log.Records(), 2)
}

func TestSoundSettingGatesSoundOnly(t *testing.T) {
	settings := model.DefaultSettings()
	settings.SoundEnabled = false
	f := newTimerFixture(t, settings)

	f.svc.Start()
	f.clock.Ticks(1500)

	starts, completes := f.sound.counts()
	assert.Zero(t, starts)
	assert.Zero(t, completes)
	starts, completes = f.haptics.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, completes)
}

func TestNotificationSettingGatesScheduling(t *testing.T) {
	settings := model.DefaultSettings()
	settings.NotificationsEnabled = false
	f := newTimerFixture(t, settings)

	f.svc.Start()

	notes, _ := f.notifier.snapshot()
	assert.Empty(t, notes)
}

func TestRestoreCountsTodaysCompletedFocusSessions(t *testing.T) {
	yesterday := testStart.AddDate(0, 0, -1)
	history := []model.SessionRecord{
		completedAt(model.ModeFocus, yesterday, 25*time.Minute),
		completedAt(model.ModeFocus, testStart.Add(-3*time.Hour), 25*time.Minute),
		completedAt(model.ModeShortBreak, testStart.Add(-150*time.Minute), 5*time.Minute),
		completedAt(model.ModeFocus, testStart.Add(-2*time.Hour), 25*time.Minute),
	}

	f := newTimerFixture(t, model.DefaultSettings(), history...)

	state := f.svc.State()
	assert.Equal(t, 2, state.FocusCompletionCount)
	assert.Equal(t, 2, state.SessionsUntilLongBreak)
	assert.Equal(t, model.ModeFocus, state.SessionType)
}

func TestRestoredCountDrivesNextLongBreak(t *testing.T) {
	var history []model.SessionRecord
	for i := 0; i < 3; i++ {
		history = append(history, completedAt(model.ModeFocus, testStart.Add(-time.Duration(i+1)*time.Hour), time.Minute))
	}
	f := newTimerFixture(t, quickSettings(), history...)

	f.runInterval()

	assert.Equal(t, model.ModeLongBreak, f.svc.State().SessionType)
}

func TestApplySettingsWhileIdle(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	settings := model.DefaultSettings()
	settings.FocusMinutes = 50
	settings.SessionsBeforeLongBreak = 2
	f.svc.ApplySettings(settings)

	state := f.svc.State()
	assert.Equal(t, 3000, state.RemainingSeconds)
	assert.Equal(t, 2, state.SessionsUntilLongBreak)
	assert.Equal(t, 2, state.SessionsBeforeLongBreak)
	assert.Equal(t, 1, f.events.count(EventSettingsChanged))
}

func TestApplySettingsWhileRunningCapsRemaining(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Start()
	f.clock.Ticks(60)
	settings := model.DefaultSettings()
	settings.FocusMinutes = 30
	f.svc.ApplySettings(settings)
	assert.Equal(t, 1440, f.svc.State().RemainingSeconds)

	settings.FocusMinutes = 10
	f.svc.ApplySettings(settings)
	state := f.svc.State()
	assert.Equal(t, 600, state.RemainingSeconds)
	assert.Equal(t, model.StatusRunning, state.Status)
}

func TestApplySettingsClampsInvalidValues(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.ApplySettings(model.Settings{FocusMinutes: -5, SessionsBeforeLongBreak: 0})

	settings := f.svc.Settings()
	assert.Equal(t, 1, settings.FocusMinutes)
	assert.Equal(t, 1, settings.ShortBreakMinutes)
	assert.Equal(t, 1, settings.SessionsBeforeLongBreak)
	assert.Equal(t, 60, f.svc.State().RemainingSeconds)
}

func TestOversizedDurationsAreCappedAndStillComplete(t *testing.T) {
	settings := model.DefaultSettings()
	settings.FocusMinutes = 200_000_000
	settings.SessionsBeforeLongBreak = 1_000_000
	f := newTimerFixture(t, settings)

	state := f.svc.State()
	assert.Equal(t, model.MaxDurationMinutes*60, state.DurationSeconds)
	assert.Equal(t, state.DurationSeconds, state.RemainingSeconds)
	assert.Equal(t, model.MaxSessionsBeforeLongBreak, state.SessionsBeforeLongBreak)
	assert.Equal(t, "1440:00", state.Clock)

	f.svc.Start()
	f.clock.Ticks(5)
	assert.Equal(t, state.DurationSeconds-5, f.svc.State().RemainingSeconds)

	f.clock.Ticks(state.DurationSeconds - 5)
	assert.Equal(t, model.ModeShortBreak, f.svc.State().SessionType)
	require.Len(t, f.log.Records(), 1)

	f.svc.ApplySettings(model.Settings{FocusMinutes: 200_000_000, ShortBreakMinutes: 200_000_000, LongBreakMinutes: 1})
	applied := f.svc.Settings()
	assert.Equal(t, model.MaxDurationMinutes, applied.FocusMinutes)
	assert.Equal(t, model.MaxDurationMinutes, applied.ShortBreakMinutes)
	assert.Equal(t, model.MaxDurationMinutes*60, f.svc.State().RemainingSeconds)
}

func TestSetProjectLabelsSession(t *testing.T) {
	f := newTimerFixture(t, quickSettings())

	f.svc.Start()
	f.svc.SetProject("  thesis ")
	f.clock.Ticks(60)

	records := f.log.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "thesis", records[0].Project())
	assert.Equal(t, "thesis", f.svc.State().CurrentProject)

	f.svc.SetProject("")
	f.runInterval()
	assert.Nil(t, f.log.Records()[1].ProjectName)
}

func TestDefaultProjectFromSettings(t *testing.T) {
	settings := model.DefaultSettings()
	settings.DefaultProject = "reading"
	f := newTimerFixture(t, settings)

	f.svc.Start()

	assert.Equal(t, "reading", f.svc.State().CurrentSession.Project())
}

func TestClearHistoryResetsCounters(t *testing.T) {
	f := newTimerFixture(t, quickSettings())
	f.runInterval()
	f.runInterval()
	f.runInterval()

	require.NoError(t, f.svc.ClearHistory(context.Background()))

	state := f.svc.State()
	assert.Empty(t, f.log.Records())
	assert.Zero(t, state.FocusCompletionCount)
	assert.Equal(t, 4, state.SessionsUntilLongBreak)
	assert.Equal(t, 1, f.events.count(EventHistoryCleared))
}

func TestClearHistoryReportsFailure(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())
	boom := errors.New("disk full")
	f.log.clearErr = boom

	err := f.svc.ClearHistory(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, f.svc.State().FocusCompletionCount)
}

func TestUnsubscribeStopsEvents(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())
	var other eventRecorder
	unsubscribe := f.svc.Subscribe(other.record)

	f.svc.Start()
	unsubscribe()
	f.svc.Pause()

	assert.Equal(t, []EventKind{EventStarted}, other.kinds())
	assert.Equal(t, []EventKind{EventStarted, EventPaused}, f.events.kinds())
}

func TestCloseStopsTicker(t *testing.T) {
	f := newTimerFixture(t, model.DefaultSettings())

	f.svc.Start()
	f.svc.Close()

	assert.False(t, f.clock.Running())
	_, pending := f.notifier.snapshot()
	assert.Zero(t, pending)
	assert.Equal(t, model.StatusPaused, f.svc.State().Status)
}

func TestConcurrentOperationsKeepStateConsistent(t *testing.T) {
	f := newTimerFixture(t, quickSettings())

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				switch (g + i) % 4 {
				case 0:
					f.svc.Start()
				case 1:
					f.svc.Tick()
				case 2:
					f.svc.Pause()
				default:
					_ = f.svc.State()
				}
			}
		}(g)
	}
	wg.Wait()

	state := f.svc.State()
	assert.GreaterOrEqual(t, state.RemainingSeconds, 0)
	assert.LessOrEqual(t, state.RemainingSeconds, state.DurationSeconds)
	for _, record := range f.log.Records() {
		assert.True(t, record.IsCompleted)
	}
}

func TestCompletedSessionsSurviveRestart(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(filepath.Join(t.TempDir(), "pomodoro.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	repo := repository.NewBlobRepository(database)

	history := sessionlog.Load(ctx, repo)
	manual := clock.NewManual(testStart)
	svc := NewTimerService(TimerDeps{Log: history, Clock: manual, Ticker: manual}, quickSettings())
	svc.Start()
	manual.Ticks(60)
	svc.Close()
	require.NoError(t, history.Close(ctx))

	reloaded := sessionlog.Load(ctx, repo)
	t.Cleanup(func() { _ = reloaded.Close(ctx) })
	require.Equal(t, 1, reloaded.Len())

	restarted := NewTimerService(TimerDeps{Log: reloaded, Clock: manual, Ticker: manual}, quickSettings())
	state := restarted.State()
	assert.Equal(t, 1, state.FocusCompletionCount)
	assert.Equal(t, 3, state.SessionsUntilLongBreak)
	assert.Equal(t, model.ModeFocus, state.SessionType)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "00:09", FormatClock(9))
	assert.Equal(t, "00:00", FormatClock(-3))
	assert.Equal(t, "61:01", FormatClock(3661))
}
