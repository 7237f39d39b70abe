package cli

import (
	"fmt"
	"net"
	"os"
	"time"

	"pomodoro/solanum/internal/clock"
	"pomodoro/solanum/internal/feedback"
	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/service"
)

// newTimer wires a timer to the session history, the terminal bell and a
// notification sink.
func newTimer(app *AppContext, deliver func(feedback.Notification)) *service.TimerService {
	wall := clock.NewReal()
	return service.NewTimerService(service.TimerDeps{
		Log:      app.Log,
		Clock:    wall,
		Ticker:   wall,
		Sound:    feedback.NewBell(os.Stderr),
		Haptics:  feedback.Nop{},
		Notifier: feedback.NewNotifier(deliver, app.Logger),
		Logger:   app.Logger,
	}, app.Settings)
}

func formatMinutes(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d/time.Minute))
	}
	return fmt.Sprintf("%dh%02dm", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

func formatRecord(r model.SessionRecord) string {
	project := r.Project()
	if project == "" {
		project = "-"
	}
	return fmt.Sprintf("%s  %s %-11s  %6s  %s",
		r.StartTime.Local().Format("15:04"),
		r.SessionType.Emoji(),
		r.SessionType.Label(),
		formatMinutes(r.Duration(time.Now())),
		project,
	)
}

// isLoopback reports whether addr only accepts local connections.
func isLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
