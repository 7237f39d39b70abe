package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pomodoro/solanum/internal/service"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise your sessions",
	Long: `Show totals, streak and the weekly breakdown of focus sessions.

Examples:
  pomodoro stats                # Last 7 days
  pomodoro stats --period month # Last month
  pomodoro stats --period all   # Everything`,
	RunE: runStats,
}

var statsPeriod string

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsPeriod, "period", "p", "week", "Time period: week, month, all")
}

func runStats(cmd *cobra.Command, args []string) error {
	rng, ok := service.ParseTimeRange(statsPeriod)
	if !ok {
		return fmt.Errorf("invalid period %q (use week, month or all)", statsPeriod)
	}

	app, err := NewAppContext(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer app.Close()

	printStats(cmd, service.NewAnalyticsService(app.Log, nil).Summary(rng))
	return nil
}

func printStats(cmd *cobra.Command, s service.Stats) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Period: %s\n", periodLabel(s.Range))
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintf(out, "Sessions:           %d\n", s.TotalSessions)
	fmt.Fprintf(out, "Focus sessions:     %d\n", s.FocusSessions)
	fmt.Fprintf(out, "Focus time:         %d min\n", s.TotalFocusMinutes)
	fmt.Fprintf(out, "Average session:    %.1f min\n", s.AverageSessionMinutes)
	fmt.Fprintf(out, "Completion rate:    %.0f%%\n", s.CompletionRate*100)
	fmt.Fprintf(out, "Current streak:     %d day(s)\n", s.CurrentStreak)
	fmt.Fprintf(out, "Today:              %d focus, %d min\n", s.TodayFocusSessions, s.TodayFocusMinutes)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "This week: %d   Last week: %d\n", s.ThisWeek, s.LastWeek)
	if s.BestWeekday != nil {
		fmt.Fprintf(out, "Best day:  %s (%d)\n", s.BestWeekday.Name, s.BestWeekday.Count)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Last 7 days:")
	for _, d := range s.Weekly {
		fmt.Fprintf(out, "  %s  %-12s %d\n", d.Day, strings.Repeat("▇", min(d.Count, 12)), d.Count)
	}

	if len(s.TopProjects) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Top projects:")
		for _, p := range s.TopProjects {
			fmt.Fprintf(out, "  %-20s %d\n", truncate(p.Name, 20), p.Count)
		}
	}
}

func periodLabel(rng service.TimeRange) string {
	switch rng {
	case service.RangeMonth:
		return "last month"
	case service.RangeAll:
		return "all time"
	}
	return "last 7 days"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
