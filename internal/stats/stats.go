// Package stats derives practice statistics from the session journal. All
// functions are pure and recompute from scratch; they tolerate duplicate
// dates and out-of-order records.
package stats

import (
	"sort"
	"time"

	"zhanzen/internal/store"
)

const dateLayout = "2006-01-02"

// Day is one cell of the weekly activity row.
type Day struct {
	Date    string
	Weekday time.Weekday // Sunday = 0
	Active  bool
}

// Streak counts consecutive calendar days with at least one session, ending
// today or yesterday. Multiple sessions on one day advance the streak once;
// a missed day breaks the chain. If the newest session date is older than
// yesterday the streak is 0.
func Streak(records []store.SessionRecord, today time.Time) int {
	if len(records) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(records))
	var dates []string
	for _, r := range records {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	// YYYY-MM-DD sorts lexicographically in date order.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	todayStr := today.Format(dateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(dateLayout)
	if dates[0] != todayStr && dates[0] != yesterdayStr {
		return 0
	}

	cursor, err := time.ParseInLocation(dateLayout, dates[0], today.Location())
	if err != nil {
		return 0
	}

	count := 0
	for _, d := range dates {
		if d != cursor.Format(dateLayout) {
			break
		}
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

// WeekActivity reports the seven calendar days ending today, oldest first,
// marking the days with at least one session.
func WeekActivity(records []store.SessionRecord, today time.Time) []Day {
	active := make(map[string]bool, len(records))
	for _, r := range records {
		active[r.Date] = true
	}

	days := make([]Day, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		ds := d.Format(dateLayout)
		days = append(days, Day{Date: ds, Weekday: d.Weekday(), Active: active[ds]})
	}
	return days
}

// Totals sums the journal for the stats view.
func Totals(records []store.SessionRecord) (sessions, minutes int) {
	for _, r := range records {
		minutes += r.Duration / 60
	}
	return len(records), minutes
}

// MinutesByDate aggregates meditation minutes per calendar date.
func MinutesByDate(records []store.SessionRecord) map[string]int {
	out := make(map[string]int, len(records))
	for _, r := range records {
		out[r.Date] += r.Duration / 60
	}
	return out
}
