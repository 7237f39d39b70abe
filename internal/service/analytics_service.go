package service

import (
	"sort"
	"strings"
	"time"

	"pomodoro/solanum/internal/clock"
	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/sessionlog"
)

type TimeRange string

const (
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeAll   TimeRange = "all"
)

const topProjectLimit = 5

func ParseTimeRange(raw string) (TimeRange, bool) {
	switch TimeRange(strings.ToLower(strings.TrimSpace(raw))) {
	case "", RangeWeek:
		return RangeWeek, true
	case RangeMonth:
		return RangeMonth, true
	case RangeAll, "all_time":
		return RangeAll, true
	}
	return "", false
}

// RecordSource is the read side of the session log.
type RecordSource interface {
	Records() []model.SessionRecord
}

type ProjectCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DayCount struct {
	Date  time.Time `json:"date"`
	Day   string    `json:"day"`
	Count int       `json:"count"`
}

type WeekdayCount struct {
	Weekday time.Weekday `json:"-"`
	Name    string       `json:"name"`
	Count   int          `json:"count"`
}

// Stats summarises the session log over a time range. Streak, weekly and
// today figures always look at the whole log.
type Stats struct {
	Range                 TimeRange      `json:"range"`
	TotalSessions         int            `json:"totalSessions"`
	FocusSessions         int            `json:"focusSessions"`
	TotalFocusMinutes     int            `json:"totalFocusMinutes"`
	AverageSessionMinutes float64        `json:"averageSessionMinutes"`
	CompletionRate        float64        `json:"completionRate"`
	CurrentStreak         int            `json:"currentStreak"`
	TopProjects           []ProjectCount `json:"topProjects"`
	Weekly                []DayCount     `json:"weekly"`
	ThisWeek              int            `json:"thisWeek"`
	LastWeek              int            `json:"lastWeek"`
	BestWeekday           *WeekdayCount  `json:"bestWeekday,omitempty"`
	TodayFocusSessions    int            `json:"todayFocusSessions"`
	TodayFocusMinutes     int            `json:"todayFocusMinutes"`
}

// HistoryQuery selects records for listing. Zero values mean no filter.
type HistoryQuery struct {
	Type  model.SessionType
	Since time.Time
	// Days keeps records from the last n days, counted from now.
	Days  int
	Limit int
}

type AnalyticsService struct {
	source RecordSource
	clock  clock.Clock
}

func NewAnalyticsService(source RecordSource, c clock.Clock) *AnalyticsService {
	if c == nil {
		c = clock.NewReal()
	}
	return &AnalyticsService{source: source, clock: c}
}

// History returns matching records newest first.
func (s *AnalyticsService) History(q HistoryQuery) []model.SessionRecord {
	records := s.source.Records()
	if q.Type != "" {
		records = sessionlog.FilterByType(records, q.Type)
	}
	since := q.Since
	if q.Days > 0 {
		if cutoff := s.clock.Now().AddDate(0, 0, -q.Days); cutoff.After(since) {
			since = cutoff
		}
	}
	if !since.IsZero() {
		records = sessionlog.FilterByDateRange(records, since, time.Time{})
	}

	out := make([]model.SessionRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out
}

func (s *AnalyticsService) Summary(rng TimeRange) Stats {
	now := s.clock.Now()
	all := s.source.Records()
	inRange := filterRange(all, rng, now)
	focus := sessionlog.FilterCompleted(sessionlog.FilterByType(inRange, model.ModeFocus), true)

	stats := Stats{
		Range:             rng,
		TotalSessions:     len(inRange),
		FocusSessions:     len(focus),
		TotalFocusMinutes: minutes(focus, now),
		CurrentStreak:     currentStreak(all, now),
		TopProjects:       topProjects(inRange),
		Weekly:            weekly(all, now),
		BestWeekday:       bestWeekday(inRange),
	}

	if len(inRange) > 0 {
		var total time.Duration
		completed := 0
		for _, r := range inRange {
			total += r.Duration(now)
			if r.IsCompleted {
				completed++
			}
		}
		stats.AverageSessionMinutes = total.Minutes() / float64(len(inRange))
		stats.CompletionRate = float64(completed) / float64(len(inRange))
	}

	allFocus := sessionlog.FilterCompleted(sessionlog.FilterByType(all, model.ModeFocus), true)
	today := sessionlog.StartOfDay(now)
	weekStart := today.AddDate(0, 0, -6)
	stats.ThisWeek = len(sessionlog.FilterByDateRange(allFocus, weekStart, time.Time{}))
	stats.LastWeek = len(sessionlog.FilterByDateRange(allFocus, weekStart.AddDate(0, 0, -7), weekStart))

	todayFocus := sessionlog.Today(allFocus, now)
	stats.TodayFocusSessions = len(todayFocus)
	stats.TodayFocusMinutes = minutes(todayFocus, now)
	return stats
}

func filterRange(records []model.SessionRecord, rng TimeRange, now time.Time) []model.SessionRecord {
	switch rng {
	case RangeWeek:
		return sessionlog.FilterByDateRange(records, now.AddDate(0, 0, -7), time.Time{})
	case RangeMonth:
		return sessionlog.FilterByDateRange(records, now.AddDate(0, -1, 0), time.Time{})
	default:
		return records
	}
}

// minutes sums durations before rounding down, so partial minutes add up.
func minutes(records []model.SessionRecord, now time.Time) int {
	var total time.Duration
	for _, r := range records {
		total += r.Duration(now)
	}
	return int(total / time.Minute)
}

// currentStreak counts consecutive days, ending today, with at least one session.
func currentStreak(records []model.SessionRecord, now time.Time) int {
	active := make(map[time.Time]struct{})
	for _, r := range records {
		active[sessionlog.StartOfDay(r.StartTime.In(now.Location()))] = struct{}{}
	}

	streak := 0
	for day := sessionlog.StartOfDay(now); ; day = day.AddDate(0, 0, -1) {
		if _, ok := active[day]; !ok {
			return streak
		}
		streak++
	}
}

func topProjects(records []model.SessionRecord) []ProjectCount {
	counts := make(map[string]int)
	for _, r := range records {
		if name := r.Project(); name != "" {
			counts[name]++
		}
	}

	projects := make([]ProjectCount, 0, len(counts))
	for name, count := range counts {
		projects = append(projects, ProjectCount{Name: name, Count: count})
	}
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Count != projects[j].Count {
			return projects[i].Count > projects[j].Count
		}
		return projects[i].Name < projects[j].Name
	})
	if len(projects) > topProjectLimit {
		projects = projects[:topProjectLimit]
	}
	return projects
}

// weekly counts focus sessions per day for the last seven days, oldest first.
func weekly(records []model.SessionRecord, now time.Time) []DayCount {
	focus := sessionlog.FilterByType(records, model.ModeFocus)
	today := sessionlog.StartOfDay(now)

	days := make([]DayCount, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		start := today.AddDate(0, 0, -offset)
		days = append(days, DayCount{
			Date:  start,
			Day:   start.Format("Mon"),
			Count: len(sessionlog.FilterByDateRange(focus, start, start.AddDate(0, 0, 1))),
		})
	}
	return days
}

func bestWeekday(records []model.SessionRecord) *WeekdayCount {
	if len(records) == 0 {
		return nil
	}
	var counts [7]int
	for _, r := range records {
		counts[r.StartTime.Weekday()]++
	}

	best := time.Sunday
	for day := time.Sunday; day <= time.Saturday; day++ {
		if counts[day] > counts[best] {
			best = day
		}
	}
	return &WeekdayCount{Weekday: best, Name: best.String(), Count: counts[best]}
}
