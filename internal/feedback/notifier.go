package feedback

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pomodoro/solanum/internal/model"
)

type Notification struct {
	SessionType model.SessionType
	Title       string
	Body        string
}

// NotificationFor builds the completion message for a session type.
func NotificationFor(sessionType model.SessionType) Notification {
	body := "Break's over. Ready to focus?"
	if sessionType == model.ModeFocus {
		body = "Great work! Time for a break."
	}
	return Notification{
		SessionType: sessionType,
		Title:       fmt.Sprintf("%s %s Complete!", sessionType.Emoji(), sessionType.Label()),
		Body:        body,
	}
}

// Notifier schedules completion notifications inside the process and hands
// them to a sink when they come due.
type Notifier struct {
	mu      sync.Mutex
	pending map[uint64]*time.Timer
	nextID  uint64
	deliver func(Notification)
	logger  *slog.Logger
}

func NewNotifier(deliver func(Notification), logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		pending: make(map[uint64]*time.Timer),
		deliver: deliver,
		logger:  logger,
	}
}

func (n *Notifier) ScheduleCompletion(sessionType model.SessionType, in time.Duration) {
	if in < 0 {
		in = 0
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	note := NotificationFor(sessionType)
	n.pending[id] = time.AfterFunc(in, func() {
		n.mu.Lock()
		_, live := n.pending[id]
		delete(n.pending, id)
		n.mu.Unlock()
		if !live {
			return
		}
		n.logger.Debug("notification due", "title", note.Title)
		if n.deliver != nil {
			n.deliver(note)
		}
	})
	n.logger.Debug("notification scheduled", "session_type", sessionType, "in", in)
}

// CancelAll drops every pending notification. Safe with nothing pending.
func (n *Notifier) CancelAll() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, timer := range n.pending {
		timer.Stop()
		delete(n.pending, id)
	}
}

func (n *Notifier) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pending)
}
