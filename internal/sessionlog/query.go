package sessionlog

import (
	"sort"
	"time"

	"pomodoro/solanum/internal/model"
)

// FilterByDateRange keeps records whose start time is in [from, to).
// A zero bound is open.
func FilterByDateRange(records []model.SessionRecord, from, to time.Time) []model.SessionRecord {
	return filter(records, func(r model.SessionRecord) bool {
		if !from.IsZero() && r.StartTime.Before(from) {
			return false
		}
		if !to.IsZero() && !r.StartTime.Before(to) {
			return false
		}
		return true
	})
}

func FilterByType(records []model.SessionRecord, sessionType model.SessionType) []model.SessionRecord {
	return filter(records, func(r model.SessionRecord) bool {
		return r.SessionType == sessionType
	})
}

func FilterCompleted(records []model.SessionRecord, completed bool) []model.SessionRecord {
	return filter(records, func(r model.SessionRecord) bool {
		return r.IsCompleted == completed
	})
}

func FilterByProject(records []model.SessionRecord, project string) []model.SessionRecord {
	return filter(records, func(r model.SessionRecord) bool {
		return r.Project() == project
	})
}

// Today keeps records that started on now's calendar day in now's location.
func Today(records []model.SessionRecord, now time.Time) []model.SessionRecord {
	start := StartOfDay(now)
	return FilterByDateRange(records, start, start.AddDate(0, 0, 1))
}

// Day is the set of records that started on one calendar day.
type Day struct {
	Date    time.Time
	Records []model.SessionRecord
}

// GroupByDay buckets records by local calendar day of their start time,
// newest day first; records keep their log order inside a day.
func GroupByDay(records []model.SessionRecord, loc *time.Location) []Day {
	if loc == nil {
		loc = time.Local
	}

	index := make(map[time.Time]int)
	var days []Day
	for _, r := range records {
		key := StartOfDay(r.StartTime.In(loc))
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, Day{Date: key})
		}
		days[i].Records = append(days[i].Records, r)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	return days
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ProjectNames lists distinct non-empty project labels, most recent first.
func ProjectNames(records []model.SessionRecord) []string {
	seen := make(map[string]struct{})
	var names []string
	for i := len(records) - 1; i >= 0; i-- {
		name := records[i].Project()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func filter(records []model.SessionRecord, keep func(model.SessionRecord) bool) []model.SessionRecord {
	out := make([]model.SessionRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
