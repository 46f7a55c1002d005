package model

import (
	"testing"
	"time"
)

func TestRoundPct(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 2, 50},
		{2, 3, 67},
		{1, 3, 33},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := RoundPct(tt.part, tt.total); got != tt.want {
			t.Fatalf("RoundPct(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestWordSetHelpers(t *testing.T) {
	list := []string{"apple", "banana"}
	if got := AddWord(list, "apple"); len(got) != 2 {
		t.Fatalf("expected dedup add, got %v", got)
	}
	list = AddWord(list, "cherry")
	if !ContainsWord(list, "cherry") {
		t.Fatalf("expected cherry added")
	}
	trimmed := RemoveWord(list, "banana")
	if ContainsWord(trimmed, "banana") || len(trimmed) != 2 {
		t.Fatalf("expected banana removed, got %v", trimmed)
	}
	// The original slice backing array must stay intact.
	if !ContainsWord(list, "banana") {
		t.Fatalf("RemoveWord mutated its input: %v", list)
	}
}

func TestRecountToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.Local)
	r := DefaultRecord()
	r.SessionHistory = []SessionRecord{
		{Date: now.Add(-2 * time.Hour)},
		{Date: now.Add(-5 * time.Hour)},
		{Date: now.AddDate(0, 0, -1)},
	}
	r.PracticeToday = 42
	r.RecountToday(now)
	if r.PracticeToday != 2 {
		t.Fatalf("expected 2 sessions today, got %d", r.PracticeToday)
	}
}
