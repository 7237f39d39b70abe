package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pomodoro/solanum/internal/service"
	"pomodoro/solanum/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive timer",
	Long: `Open the interactive timer.

Keys:
  space  start or pause
  s      skip to the next session
  r      reset the current session
  p      set the project label
  ?      toggle help
  q      quit

Logs are written to the log file in the data directory.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer app.Close()

	bridge := ui.NewBridge()
	defer bridge.Close()

	timer := newTimer(app, bridge.Notify)
	defer timer.Close()
	unsubscribe := timer.Subscribe(bridge.Publish)
	defer unsubscribe()

	analytics := service.NewAnalyticsService(app.Log, nil)
	program := tea.NewProgram(ui.New(timer, analytics, bridge), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run timer: %w", err)
	}
	return nil
}
