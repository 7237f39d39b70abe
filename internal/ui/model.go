// Package ui is the interactive terminal screen for the timer.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/service"
)

const (
	celebrationDuration = 2 * time.Second
	toastDuration       = 6 * time.Second
	maxProgressWidth    = 48
)

// Timer is the part of the timer service the screen drives.
type Timer interface {
	State() service.StateView
	Start()
	Pause()
	Skip()
	Reset()
	SetProject(name string)
}

// Stats supplies the today figures shown under the clock.
type Stats interface {
	Summary(rng service.TimeRange) service.Stats
}

// Model is the root bubbletea model.
type Model struct {
	timer  Timer
	stats  Stats
	bridge *Bridge

	state         service.StateView
	todaySessions int
	todayMinutes  int

	keys     keyMap
	help     help.Model
	progress progress.Model
	input    textinput.Model
	editing  bool

	celebrating    bool
	celebrationSeq int
	toast          string
	toastSeq       int

	width int
}

func New(timer Timer, stats Stats, bridge *Bridge) Model {
	input := textinput.New()
	input.Placeholder = "project name"
	input.CharLimit = 64
	input.Prompt = "project: "

	m := Model{
		timer:    timer,
		stats:    stats,
		bridge:   bridge,
		state:    timer.State(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill(string(ColorTomato)), progress.WithoutPercentage()),
		input:    input,
	}
	m.progress.Width = maxProgressWidth
	m.refreshToday()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitBridge()
}

func (m Model) waitBridge() tea.Cmd {
	if m.bridge == nil {
		return nil
	}
	return m.bridge.wait()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(maxProgressWidth, max(10, msg.Width-8))
		return m, nil

	case EngineEventMsg:
		cmd := m.handleEvent(msg.Event)
		return m, tea.Batch(cmd, m.waitBridge())

	case NotificationMsg:
		m.toastSeq++
		m.toast = fmt.Sprintf("%s %s", msg.Notification.Title, msg.Notification.Body)
		seq := m.toastSeq
		return m, tea.Batch(
			tea.Tick(toastDuration, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} }),
			m.waitBridge(),
		)

	case clearCelebrationMsg:
		if msg.seq == m.celebrationSeq {
			m.celebrating = false
		}
		return m, nil

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case bridgeClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if m.state.IsRunning {
			m.timer.Pause()
		} else {
			m.timer.Start()
		}
	case key.Matches(msg, m.keys.Skip):
		m.timer.Skip()
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
	case key.Matches(msg, m.keys.Project):
		m.editing = true
		m.input.SetValue(m.state.CurrentProject)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}

	m.state = m.timer.State()
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.timer.SetProject(m.input.Value())
		m.state = m.timer.State()
		m.stopEditing()
		return m, nil
	case tea.KeyEsc:
		m.stopEditing()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) handleEvent(event service.Event) tea.Cmd {
	m.state = event.State

	switch event.Kind {
	case service.EventCompleted, service.EventHistoryCleared:
		m.refreshToday()
	case service.EventCelebrate:
		m.celebrating = true
		m.celebrationSeq++
		seq := m.celebrationSeq
		return tea.Tick(celebrationDuration, func(time.Time) tea.Msg {
			return clearCelebrationMsg{seq: seq}
		})
	}
	return nil
}

func (m *Model) refreshToday() {
	if m.stats == nil {
		return
	}
	summary := m.stats.Summary(service.RangeWeek)
	m.todaySessions = summary.TodayFocusSessions
	m.todayMinutes = summary.TodayFocusMinutes
}

func (m Model) View() string {
	var b strings.Builder
	s := m.state
	color := accent(s.SessionType.Label())

	title := fmt.Sprintf("%s %s", s.SessionType.Emoji(), s.SessionType.Label())
	b.WriteString(TitleStyle.Foreground(color).Render(title))
	b.WriteString("\n")
	b.WriteString(ClockStyle.Render(s.Clock))
	b.WriteString("\n")

	bar := m.progress
	bar.FullColor = string(color)
	b.WriteString(bar.ViewAs(s.Progress))
	b.WriteString("\n\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(StatusStyle.Render(m.countersLine()))
	b.WriteString("\n")

	if m.celebrating {
		b.WriteString("\n")
		b.WriteString(CelebrationStyle.Render(celebrationText(s.SessionType)))
		b.WriteString("\n")
	}
	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(ToastStyle.Render(m.toast))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.editing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render("enter save • esc cancel"))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	return FrameStyle.Render(b.String())
}

func (m Model) statusLine() string {
	s := m.state
	dot := IdleDotStyle.Render("○")
	label := "Ready"
	switch s.Status {
	case model.StatusRunning:
		dot = RunningDotStyle.Render("●")
		label = "Running"
	case model.StatusPaused:
		label = "Paused"
	}

	parts := []string{dot + " " + label}
	if s.CurrentProject != "" {
		parts = append(parts, "project: "+s.CurrentProject)
	}
	return strings.Join(parts, StatusStyle.Render("  ·  "))
}

func (m Model) countersLine() string {
	untilLong := fmt.Sprintf("%d sessions until long break", m.state.SessionsUntilLongBreak)
	if m.state.SessionsUntilLongBreak == 1 {
		untilLong = "1 session until long break"
	}
	return fmt.Sprintf("%s  ·  today: %d focus, %d min", untilLong, m.todaySessions, m.todayMinutes)
}

// celebrationText follows a completed session; the state already shows the
// next session type.
func celebrationText(next model.SessionType) string {
	if next.IsBreak() {
		return "🎉 Focus session complete! Take a break."
	}
	return "✨ Break over. Back to focus!"
}
