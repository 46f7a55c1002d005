package progress

import (
	"testing"
	"time"

	"github.com/spellsan/spellsan/internal/model"
)

func sessionsOn(now time.Time, daysAgo ...int) []model.SessionRecord {
	history := make([]model.SessionRecord, 0, len(daysAgo))
	for _, d := range daysAgo {
		history = append(history, model.SessionRecord{
			Date: now.AddDate(0, 0, -d),
			Mode: model.ModeRandom,
		})
	}
	return history
}

func TestCalculateStreak(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		daysAgo []int
		want    int
	}{
		{name: "empty", daysAgo: nil, want: 0},
		{name: "today only", daysAgo: []int{0}, want: 1},
		{name: "three consecutive days", daysAgo: []int{0, 1, 2}, want: 3},
		{name: "yesterday grace", daysAgo: []int{1, 2, 3}, want: 3},
		{name: "gap breaks streak", daysAgo: []int{0, 3}, want: 1},
		{name: "gap after yesterday", daysAgo: []int{1, 4}, want: 1},
		{name: "stale history", daysAgo: []int{2, 3}, want: 0},
		{name: "multiple sessions same day", daysAgo: []int{0, 0, 1, 1}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStreak(sessionsOn(now, tt.daysAgo...), now)
			if got != tt.want {
				t.Fatalf("expected streak %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCalculateStreakIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local)
	history := sessionsOn(now, 0, 1, 2)
	first := CalculateStreak(history, now)
	second := CalculateStreak(history, now)
	if first != second {
		t.Fatalf("streak not idempotent: %d then %d", first, second)
	}
}

func TestCalculateStreakUnorderedHistory(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 0, 0, 0, time.Local)
	history := sessionsOn(now, 2, 0, 1)
	if got := CalculateStreak(history, now); got != 3 {
		t.Fatalf("expected streak 3 from unordered history, got %d", got)
	}
}
