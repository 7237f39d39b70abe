package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/solanum/internal/feedback"
	"pomodoro/solanum/internal/service"
)

const bridgeBuffer = 256

// Bridge carries engine events and notifications to the program. Publishing
// never blocks the engine: when the program falls behind, messages are
// dropped, and the next event's snapshot brings the screen up to date.
type Bridge struct {
	mu     sync.Mutex
	ch     chan tea.Msg
	closed bool
}

func NewBridge() *Bridge {
	return &Bridge{ch: make(chan tea.Msg, bridgeBuffer)}
}

// Publish is a service.TimerService subscriber.
func (b *Bridge) Publish(event service.Event) {
	b.send(EngineEventMsg{Event: event})
}

// Notify is a feedback.Notifier sink.
func (b *Bridge) Notify(note feedback.Notification) {
	b.send(NotificationMsg{Notification: note})
}

func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.ch)
	}
}

func (b *Bridge) send(msg tea.Msg) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.ch <- msg:
	default:
	}
}

// wait reads the next message from the bridge.
func (b *Bridge) wait() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.ch
		if !ok {
			return bridgeClosedMsg{}
		}
		return msg
	}
}
