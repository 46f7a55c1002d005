// Package model defines shared data structures.
package model

import (
	"math"
	"time"
)

// SchemaVersion tags the persisted progress document.
const SchemaVersion = "1.0"

// Mode identifies how the practice corpus is filtered.
type Mode string

// Practice modes.
const (
	ModeRandom   Mode = "random"
	ModeAlphabet Mode = "alphabet"
)

// Category classifies a word against the progress record.
type Category string

// Word categories. Exactly one applies to any word.
const (
	CategoryNew       Category = "new"
	CategoryLearned   Category = "learned"
	CategoryDifficult Category = "difficult"
)

// Record holds all progress state for one user. WordsLearned and
// DifficultWords are disjoint sets; SessionHistory is append-only in
// chronological-by-append order.
type Record struct {
	WordsLearned          []string        `json:"wordsLearned"`
	DifficultWords        []string        `json:"difficultWords"`
	SessionHistory        []SessionRecord `json:"sessionHistory"`
	TotalWordsAttempted   int             `json:"totalWordsAttempted"`
	TotalCorrectAnswers   int             `json:"totalCorrectAnswers"`
	AverageAccuracy       int             `json:"averageAccuracy"`
	TotalPracticeSessions int             `json:"totalPracticeSessions"`
	Streak                int             `json:"streak"`
	StreakStartDate       time.Time       `json:"streakStartDate"`
	LastPracticeDate      time.Time       `json:"lastPracticeDate"`
	PracticeToday         int             `json:"practiceToday"`
}

// SessionRecord captures one finished (or autosaved) practice session.
// Immutable once its session is finalized.
type SessionRecord struct {
	SessionID                 string    `json:"sessionId,omitempty"`
	Date                      time.Time `json:"date"`
	Mode                      Mode      `json:"mode"`
	Alphabet                  string    `json:"alphabet,omitempty"`
	WordsAttempted            int       `json:"wordsAttempted"`
	CorrectAnswers            int       `json:"correctAnswers"`
	Accuracy                  int       `json:"accuracy"`
	Duration                  int       `json:"duration"`
	WordsLearned              []string  `json:"wordsLearned"`
	DifficultWordsEncountered []string  `json:"difficultWordsEncountered"`
}

// Session is the input to session finalization. ID is assigned once at
// session start so repeated finalize calls converge on one record.
type Session struct {
	ID             string
	Mode           Mode
	Alphabet       string
	WordsAttempted int
	CorrectAnswers int
	StartTime      time.Time
	EndTime        time.Time
	WordsCorrect   []string
	WordsIncorrect []string
}

// LetterProgress summarizes mastery of words starting with one letter.
type LetterProgress struct {
	Letter       string
	TotalWords   int
	LearnedWords int
	Progress     int
}

// Config defines practice settings.
type Config struct {
	Mode         Mode
	Letter       string
	TimerSeconds int
	SaveSeconds  int
	WordListPath string
}

// DefaultRecord returns an all-empty progress record.
func DefaultRecord() Record {
	return Record{
		WordsLearned:   []string{},
		DifficultWords: []string{},
		SessionHistory: []SessionRecord{},
	}
}

// RoundPct computes round(100*part/total), 0 when total is 0.
func RoundPct(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// RecomputeAverage refreshes AverageAccuracy from the aggregate counters.
func (r *Record) RecomputeAverage() {
	r.AverageAccuracy = RoundPct(r.TotalCorrectAnswers, r.TotalWordsAttempted)
}

// RecountToday recomputes PracticeToday from the session history. Derived,
// never trusted from storage.
func (r *Record) RecountToday(now time.Time) {
	count := 0
	for _, s := range r.SessionHistory {
		if SameDay(s.Date, now) {
			count++
		}
	}
	r.PracticeToday = count
}

// DateOnly truncates a timestamp to its local calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// SameDay reports whether two timestamps fall on the same local date.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// ContainsWord reports whether the list holds the word.
func ContainsWord(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}

// AddWord appends the word unless it is already present.
func AddWord(list []string, word string) []string {
	if ContainsWord(list, word) {
		return list
	}
	return append(list, word)
}

// RemoveWord removes every occurrence of the word. The input slice is left
// untouched so snapshots of a record stay valid.
func RemoveWord(list []string, word string) []string {
	if !ContainsWord(list, word) {
		return list
	}
	out := make([]string, 0, len(list)-1)
	for _, w := range list {
		if w != word {
			out = append(out, w)
		}
	}
	return out
}
