package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/spellsan/spellsan/internal/model"
	"github.com/spellsan/spellsan/internal/store"
)

// Tracker is the transactional boundary between a running practice session
// and the persisted progress record. Storage failures are logged and the
// in-memory result is still returned, so an interrupted session never takes
// the UI down with it.
type Tracker struct {
	store *store.Store
	now   func() time.Time
}

// NewTracker wraps a store.
func NewTracker(st *store.Store) *Tracker {
	return &Tracker{store: st, now: time.Now}
}

// Load returns the current progress record.
func (t *Tracker) Load(ctx context.Context) model.Record {
	return t.store.Load(ctx)
}

// StartSession marks the start of a practice session and returns its
// identifier. The streak is refreshed as if today had been practiced, never
// regressing below the stored value, so an in-progress session cannot undo a
// streak established earlier today.
func (t *Tracker) StartSession(ctx context.Context) string {
	id := uuid.NewString()
	now := t.now()

	record := t.store.Load(ctx)
	record.LastPracticeDate = now
	record.RecountToday(now)

	withToday := append(append([]model.SessionRecord{}, record.SessionHistory...),
		model.SessionRecord{Date: now, Mode: model.ModeRandom})
	if streak := CalculateStreak(withToday, now); streak > record.Streak {
		record.Streak = streak
		if streak == 1 {
			record.StreakStartDate = now
		}
	}

	t.save(ctx, record)
	return id
}

// RecordAnswer applies a single answer immediately, independent of session
// finalization: reclassifies the word, bumps the aggregate counters, and
// persists so an open dashboard stays live during practice.
func (t *Tracker) RecordAnswer(ctx context.Context, word string, isCorrect bool) model.Record {
	record := t.store.Load(ctx)
	applyAnswer(&record, word, isCorrect)
	t.save(ctx, record)
	return record
}

// RecordSession finalizes a session. Called on completion, on exit, and
// periodically while the session runs; calls sharing a session ID update the
// same record in place, so autosaves and the final save converge on one
// SessionRecord with correct aggregates.
func (t *Tracker) RecordSession(ctx context.Context, session model.Session) model.Record {
	session = clampSession(session)
	now := t.now()

	record := t.store.Load(ctx)

	entry := model.SessionRecord{
		SessionID:                 session.ID,
		Date:                      now,
		Mode:                      session.Mode,
		Alphabet:                  session.Alphabet,
		WordsAttempted:            session.WordsAttempted,
		CorrectAnswers:            session.CorrectAnswers,
		Accuracy:                  model.RoundPct(session.CorrectAnswers, session.WordsAttempted),
		Duration:                  durationMinutes(session.StartTime, session.EndTime),
		WordsLearned:              append([]string{}, session.WordsCorrect...),
		DifficultWordsEncountered: append([]string{}, session.WordsIncorrect...),
	}

	if idx := findSession(record.SessionHistory, session.ID); idx >= 0 {
		prev := record.SessionHistory[idx]
		record.TotalWordsAttempted -= prev.WordsAttempted
		record.TotalCorrectAnswers -= prev.CorrectAnswers
		record.SessionHistory[idx] = entry
	} else {
		record.SessionHistory = append(record.SessionHistory, entry)
		record.TotalPracticeSessions++
	}
	record.TotalWordsAttempted += session.WordsAttempted
	record.TotalCorrectAnswers += session.CorrectAnswers
	record.RecomputeAverage()

	// Merge the session outcomes; a word corrected this session is no longer
	// difficult even if it was also missed earlier in the same session.
	for _, word := range session.WordsIncorrect {
		if model.ContainsWord(session.WordsCorrect, word) {
			continue
		}
		record.DifficultWords = model.AddWord(record.DifficultWords, word)
		record.WordsLearned = model.RemoveWord(record.WordsLearned, word)
	}
	for _, word := range session.WordsCorrect {
		record.WordsLearned = model.AddWord(record.WordsLearned, word)
		record.DifficultWords = model.RemoveWord(record.DifficultWords, word)
	}

	prevStreak := record.Streak
	record.Streak = CalculateStreak(record.SessionHistory, now)
	if record.Streak == 1 && prevStreak != 1 {
		record.StreakStartDate = now
	}
	record.LastPracticeDate = now
	record.RecountToday(now)

	t.save(ctx, record)
	return record
}

// Reset deletes all persisted progress.
func (t *Tracker) Reset(ctx context.Context) error {
	return t.store.Reset(ctx)
}

// Export returns the progress record as a portable JSON document.
func (t *Tracker) Export(ctx context.Context) ([]byte, error) {
	record := t.store.Load(ctx)
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode progress: %w", err)
	}
	return data, nil
}

// Import replaces the stored progress with the given document. Malformed
// input leaves existing state untouched. PracticeToday is recomputed rather
// than trusted from the document.
func (t *Tracker) Import(ctx context.Context, data []byte) error {
	record := model.DefaultRecord()
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse progress document: %w", err)
	}
	// Restore the disjointness invariant if the document violates it;
	// difficult wins, matching classification priority.
	for _, word := range record.DifficultWords {
		record.WordsLearned = model.RemoveWord(record.WordsLearned, word)
	}
	record.RecomputeAverage()
	record.RecountToday(t.now())
	if err := t.store.Save(ctx, record); err != nil {
		return err
	}
	return nil
}

func (t *Tracker) save(ctx context.Context, record model.Record) {
	if err := t.store.Save(ctx, record); err != nil {
		logErrf("failed to save progress: %v\n", err)
	}
}

// applyAnswer is the single state transition shared by the per-answer and
// per-session update paths. It keeps the learned and difficult sets disjoint.
func applyAnswer(record *model.Record, word string, isCorrect bool) {
	if isCorrect {
		record.WordsLearned = model.AddWord(record.WordsLearned, word)
		record.DifficultWords = model.RemoveWord(record.DifficultWords, word)
	} else {
		record.DifficultWords = model.AddWord(record.DifficultWords, word)
		record.WordsLearned = model.RemoveWord(record.WordsLearned, word)
	}
	record.TotalWordsAttempted++
	if isCorrect {
		record.TotalCorrectAnswers++
	}
	record.RecomputeAverage()
}

// clampSession defends against malformed caller input: counts are never
// negative and correct answers never exceed attempts.
func clampSession(session model.Session) model.Session {
	if session.WordsAttempted < 0 {
		logErrf("negative wordsAttempted %d, clamping to 0\n", session.WordsAttempted)
		session.WordsAttempted = 0
	}
	if session.CorrectAnswers < 0 {
		logErrf("negative correctAnswers %d, clamping to 0\n", session.CorrectAnswers)
		session.CorrectAnswers = 0
	}
	if session.CorrectAnswers > session.WordsAttempted {
		logErrf("correctAnswers %d exceeds wordsAttempted %d, clamping\n",
			session.CorrectAnswers, session.WordsAttempted)
		session.CorrectAnswers = session.WordsAttempted
	}
	return session
}

// durationMinutes floors the elapsed wall-clock time to whole minutes, with a
// one-minute minimum.
func durationMinutes(start, end time.Time) int {
	minutes := int(end.Sub(start).Minutes())
	if minutes < 1 {
		return 1
	}
	return minutes
}

func findSession(history []model.SessionRecord, id string) int {
	if id == "" {
		return -1
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].SessionID == id {
			return i
		}
	}
	return -1
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
