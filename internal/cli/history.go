package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/repository"
	"pomodoro/solanum/internal/service"
	"pomodoro/solanum/internal/sessionlog"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past sessions",
	Long: `List past sessions, newest first, grouped by day.

Examples:
  pomodoro history                 # Most recent sessions
  pomodoro history --type focus    # Focus sessions only
  pomodoro history --days 7 -n 50  # Up to 50 sessions from the last week`,
	RunE: runHistory,
}

var (
	historyType  string
	historyDays  int
	historyLimit int
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyType, "type", "t", "", "Session type: focus, short_break, long_break")
	historyCmd.Flags().IntVarP(&historyDays, "days", "d", 0, "Only sessions from the last n days")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum sessions to show (default from POMODORO_HISTORY_LIMIT)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	query := service.HistoryQuery{Days: historyDays}
	if historyType != "" {
		sessionType, ok := model.ParseSessionType(historyType)
		if !ok {
			return fmt.Errorf("invalid session type %q (use focus, short_break or long_break)", historyType)
		}
		query.Type = sessionType
	}
	if historyDays < 0 || historyLimit < 0 {
		return fmt.Errorf("--days and --limit must not be negative")
	}

	app, err := NewAppContext(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer app.Close()

	query.Limit = app.Config.HistoryLimit
	if cmd.Flags().Changed("limit") {
		query.Limit = historyLimit
	}

	records := service.NewAnalyticsService(app.Log, nil).History(query)
	printHistory(cmd, records)

	savedAt, err := repository.NewBlobRepository(app.DB).UpdatedAt(cmd.Context(), sessionlog.StorageKey)
	switch {
	case err == nil:
		fmt.Fprintf(cmd.OutOrStdout(), "\nLast saved %s\n", savedAt.Local().Format("Mon 02 Jan 2006 15:04"))
	case !errors.Is(err, repository.ErrNotFound):
		app.Logger.Warn("history save time unavailable", "error", err)
	}
	return nil
}

func printHistory(cmd *cobra.Command, records []model.SessionRecord) {
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No sessions yet.")
		return
	}

	for i, day := range sessionlog.GroupByDay(records, nil) {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, day.Date.Format("Mon 02 Jan 2006"))
		for _, r := range day.Records {
			marker := " "
			if !r.IsCompleted {
				marker = "~"
			}
			fmt.Fprintf(out, " %s %s\n", marker, formatRecord(r))
		}
	}
}
