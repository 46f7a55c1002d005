package progress

import (
	"sort"
	"time"

	"github.com/spellsan/spellsan/internal/model"
)

// CalculateStreak computes the consecutive-day practice streak from the
// session history, anchored at now's local date. A streak counts today and
// walks backward over exactly-one-day gaps; a history whose most recent day
// is yesterday still counts (today simply has not been practiced yet). Any
// older most-recent day means the streak is broken.
func CalculateStreak(history []model.SessionRecord, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	dates := distinctDates(history)
	today := model.DateOnly(now)
	yesterday := today.AddDate(0, 0, -1)

	streak := 0
	expected := today
	for _, date := range dates {
		switch {
		case date.Equal(expected):
			streak++
			expected = date.AddDate(0, 0, -1)
		case streak == 0 && date.Equal(yesterday):
			// Grace window: today not yet practiced, yesterday was.
			streak++
			expected = date.AddDate(0, 0, -1)
		default:
			return streak
		}
	}
	return streak
}

// distinctDates returns the unique local practice dates, most recent first.
func distinctDates(history []model.SessionRecord) []time.Time {
	seen := map[time.Time]struct{}{}
	dates := make([]time.Time, 0, len(history))
	for _, s := range history {
		date := model.DateOnly(s.Date)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}
