package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spellsan/spellsan/internal/model"
)

func TestRenderSummary(t *testing.T) {
	record := model.DefaultRecord()
	record.Streak = 3
	record.PracticeToday = 2
	record.TotalPracticeSessions = 7
	record.WordsLearned = []string{"apple", "queue"}
	record.DifficultWords = []string{"rhythm"}
	record.TotalWordsAttempted = 20
	record.AverageAccuracy = 85
	record.LastPracticeDate = time.Date(2026, 8, 30, 18, 15, 0, 0, time.Local)

	var buf bytes.Buffer
	if err := RenderSummary(&buf, record); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Streak: 3 day(s)",
		"Sessions today: 2",
		"Words learned: 2",
		"Difficult words: 1",
		"Average accuracy: 85%",
		"Last practice: 2026-08-30 18:15",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderLetterTable(t *testing.T) {
	letters := []model.LetterProgress{
		{Letter: "A", TotalWords: 4, LearnedWords: 2, Progress: 50},
		{Letter: "B", TotalWords: 0},
		{Letter: "C", TotalWords: 1, LearnedWords: 1, Progress: 100},
	}
	var buf bytes.Buffer
	if err := RenderLetterTable(&buf, letters); err != nil {
		t.Fatalf("render letter table: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "A") || !strings.Contains(out, "50%") {
		t.Fatalf("missing A row:\n%s", out)
	}
	if !strings.Contains(out, "100%") {
		t.Fatalf("missing C row:\n%s", out)
	}
	// Letters with no corpus words are omitted.
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "B ") {
			t.Fatalf("empty letter should be skipped:\n%s", out)
		}
	}
}

func TestRenderSessionsLimitsHistory(t *testing.T) {
	record := model.DefaultRecord()
	for i := 0; i < 5; i++ {
		record.SessionHistory = append(record.SessionHistory, model.SessionRecord{
			Date:           time.Date(2026, 8, 25+i, 10, 0, 0, 0, time.Local),
			Mode:           model.ModeRandom,
			WordsAttempted: 10,
			CorrectAnswers: 8,
			Accuracy:       80,
			Duration:       2,
		})
	}
	var buf bytes.Buffer
	if err := RenderSessions(&buf, record, 2); err != nil {
		t.Fatalf("render sessions: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "2026-08-25") {
		t.Fatalf("oldest session should be dropped by the limit:\n%s", out)
	}
	if !strings.Contains(out, "2026-08-29") {
		t.Fatalf("newest session missing:\n%s", out)
	}
}

func TestFormatTableAlignment(t *testing.T) {
	headers := []string{"Letter", "Total"}
	rows := [][]string{
		{"A", "4"},
		{"B", "12"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if lines[1] != "A          4" {
		t.Fatalf("unexpected right alignment: %q", lines[1])
	}
	if lines[2] != "B         12" {
		t.Fatalf("unexpected right alignment: %q", lines[2])
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	flat := Sparkline([]float64{50, 50, 50})
	if len(flat) != 3 || strings.Trim(flat, string(flat[0])) != "" {
		t.Fatalf("flat series should repeat one glyph, got %q", flat)
	}
	rising := Sparkline([]float64{0, 50, 100})
	if len(rising) != 3 {
		t.Fatalf("expected 3 glyphs, got %q", rising)
	}
	if rising[0] != ' ' || rising[2] != '@' {
		t.Fatalf("expected full range glyphs, got %q", rising)
	}
}

func TestAccuracySeries(t *testing.T) {
	history := []model.SessionRecord{
		{Accuracy: 40},
		{Accuracy: 60},
		{Accuracy: 90},
	}
	got := AccuracySeries(history)
	if len(got) != 3 || got[0] != 40 || got[2] != 90 {
		t.Fatalf("unexpected series: %v", got)
	}
}
