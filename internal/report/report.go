// Package report renders progress summaries for terminal output.
package report

import (
	"fmt"
	"io"

	"github.com/spellsan/spellsan/internal/model"
	"github.com/spellsan/spellsan/internal/progress"
)

// Report contains precomputed data for progress rendering.
type Report struct {
	Record  model.Record
	Letters []model.LetterProgress
}

// Build prepares a report from the record and corpus.
func Build(record model.Record, corpus []string) Report {
	return Report{
		Record:  record,
		Letters: progress.AlphabetProgress(record, corpus),
	}
}

// RenderSummary prints the headline progress numbers.
func RenderSummary(w io.Writer, record model.Record) error {
	lines := []string{
		"Progress",
		fmt.Sprintf("Streak: %d day(s)", record.Streak),
		fmt.Sprintf("Sessions today: %d", record.PracticeToday),
		fmt.Sprintf("Total sessions: %d", record.TotalPracticeSessions),
		fmt.Sprintf("Words learned: %d", len(record.WordsLearned)),
		fmt.Sprintf("Difficult words: %d", len(record.DifficultWords)),
		fmt.Sprintf("Words attempted: %d", record.TotalWordsAttempted),
		fmt.Sprintf("Average accuracy: %d%%", record.AverageAccuracy),
	}
	if !record.LastPracticeDate.IsZero() {
		lines = append(lines, fmt.Sprintf("Last practice: %s",
			record.LastPracticeDate.Local().Format("2006-01-02 15:04")))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderLetterTable prints per-letter mastery, skipping letters with no
// corpus words.
func RenderLetterTable(w io.Writer, letters []model.LetterProgress) error {
	rows := make([][]string, 0, len(letters))
	for _, lp := range letters {
		if lp.TotalWords == 0 {
			continue
		}
		rows = append(rows, []string{
			lp.Letter,
			fmt.Sprintf("%d", lp.LearnedWords),
			fmt.Sprintf("%d", lp.TotalWords),
			fmt.Sprintf("%d%%", lp.Progress),
		})
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No words in the corpus.")
		return err
	}
	if _, err := fmt.Fprintln(w, "By Letter"); err != nil {
		return err
	}
	headers := []string{"Letter", "Learned", "Total", "Progress"}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderSessions prints the most recent session records, newest last.
func RenderSessions(w io.Writer, record model.Record, last int) error {
	history := record.SessionHistory
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, "No sessions recorded.")
		return err
	}
	if last > 0 && len(history) > last {
		history = history[len(history)-last:]
	}
	if _, err := fmt.Fprintln(w, "Recent Sessions"); err != nil {
		return err
	}
	headers := []string{"Date", "Mode", "Words", "Correct", "Accuracy", "Minutes"}
	rows := make([][]string, 0, len(history))
	for _, s := range history {
		mode := string(s.Mode)
		if s.Mode == model.ModeAlphabet && s.Alphabet != "" {
			mode = fmt.Sprintf("%s (%s)", mode, s.Alphabet)
		}
		rows = append(rows, []string{
			s.Date.Local().Format("2006-01-02 15:04"),
			mode,
			fmt.Sprintf("%d", s.WordsAttempted),
			fmt.Sprintf("%d", s.CorrectAnswers),
			fmt.Sprintf("%d%%", s.Accuracy),
			fmt.Sprintf("%d", s.Duration),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderTrend prints an accuracy sparkline over the session history.
func RenderTrend(w io.Writer, record model.Record, width int) error {
	values := AccuracySeries(record.SessionHistory)
	if len(values) == 0 {
		return nil
	}
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	if _, err := fmt.Fprintf(w, "Accuracy trend: %s\n\n", Sparkline(values)); err != nil {
		return err
	}
	return nil
}

// AccuracySeries extracts per-session accuracy values in history order.
func AccuracySeries(history []model.SessionRecord) []float64 {
	values := make([]float64, len(history))
	for i, s := range history {
		values[i] = float64(s.Accuracy)
	}
	return values
}
