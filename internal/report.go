package internal

import (
	"math"
	"strings"
	"time"
)

// MonthlyReport summarizes the tasks created during one calendar month.
type MonthlyReport struct {
	Start    time.Time
	End      time.Time
	Total    int
	Finished int
	// Rate is the rounded percentage of finished tasks, 0 when there are no tasks.
	Rate int
}

// MonthWindow returns [start, end) for the calendar month containing now, in now's location.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	year, month, _ := now.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())

	return start, start.AddDate(0, 1, 0)
}

// Aggregate counts the tasks created in [start, end) and how many of those are finished. Tasks
// with a zero CreatedAt could not be dated and are left out.
func Aggregate(tasks []Task, start, end time.Time) MonthlyReport {
	res := MonthlyReport{
		Start: start,
		End:   end,
	}

	for _, task := range tasks {
		if task.CreatedAt.IsZero() || task.CreatedAt.Before(start) || !task.CreatedAt.Before(end) {
			continue
		}

		res.Total++

		if task.Status == StatusFinished {
			res.Finished++
		}
	}

	if res.Total > 0 {
		res.Rate = int(math.Round(float64(res.Finished) / float64(res.Total) * 100))
	}

	return res
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseCreatedAt converts a creation timestamp as found in a stored document into an instant.
// Store-native timestamps (anything exposing Time or AsTime, {seconds, nanoseconds} maps),
// unix milliseconds and date-like strings are supported; the boolean is false otherwise.
// Strings without a zone are read as UTC.
func ParseCreatedAt(v interface{}) (time.Time, bool) {
	var res time.Time

	switch val := v.(type) {
	case time.Time:
		res = val
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		res = *val
	case interface{ Time() time.Time }:
		res = val.Time()
	case interface{ AsTime() time.Time }:
		res = val.AsTime()
	case map[string]interface{}:
		return parseSeconds(val)
	case int64:
		res = time.UnixMilli(val)
	case int:
		res = time.UnixMilli(int64(val))
	case float64:
		res = time.UnixMilli(int64(val))
	case string:
		return parseDateString(val)
	default:
		return time.Time{}, false
	}

	if res.IsZero() {
		return time.Time{}, false
	}

	return res, true
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseSeconds(m map[string]interface{}) (time.Time, bool) {
	number := func(keys ...string) (int64, bool) {
		for _, k := range keys {
			switch n := m[k].(type) {
			case int64:
				return n, true
			case int32:
				return int64(n), true
			case int:
				return int64(n), true
			case float64:
				return int64(n), true
			}
		}

		return 0, false
	}

	sec, ok := number("seconds", "_seconds")
	if !ok {
		return time.Time{}, false
	}

	nsec, _ := number("nanoseconds", "_nanoseconds", "nanos")

	return time.Unix(sec, nsec), true
}
