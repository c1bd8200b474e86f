package checklist

import "time"

// Clock supplies the current time. Injected so tests can pin "today".
type Clock func() time.Time

// DayKey formats the local calendar date of t as YYYY-MM-DD. Local wall
// clock, not UTC, so a user's "today" matches their day. Keys compare
// lexicographically in calendar order.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// LastNDays returns n dates descending from today (today first). The time
// of day is pinned to noon so AddDate arithmetic cannot slip a day across
// DST transitions.
func LastNDays(n int, now time.Time) []time.Time {
	base := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, base.AddDate(0, 0, -i))
	}
	return out
}

// LastNDayKeys returns the day keys of the trailing n-day window, today
// first.
func LastNDayKeys(n int, now time.Time) []string {
	days := LastNDays(n, now)
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = DayKey(d)
	}
	return keys
}
