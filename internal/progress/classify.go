// Package progress implements the progress-tracking and adaptive
// word-selection engine.
package progress

import (
	"strings"

	"github.com/spellsan/spellsan/internal/model"
)

// Classify derives a word's current category from the record. Difficult wins
// over learned; anything else is new. The learned and difficult sets are
// disjoint, so exactly one category applies.
func Classify(record model.Record, word string) model.Category {
	if model.ContainsWord(record.DifficultWords, word) {
		return model.CategoryDifficult
	}
	if model.ContainsWord(record.WordsLearned, word) {
		return model.CategoryLearned
	}
	return model.CategoryNew
}

// AlphabetProgress reports, for each letter A-Z, how many corpus words start
// with that letter and how many of those are learned. Display-only.
func AlphabetProgress(record model.Record, corpus []string) []model.LetterProgress {
	result := make([]model.LetterProgress, 0, 26)
	for ch := 'A'; ch <= 'Z'; ch++ {
		letter := string(ch)
		total := 0
		for _, word := range corpus {
			if startsWithLetter(word, letter) {
				total++
			}
		}
		learned := 0
		for _, word := range record.WordsLearned {
			if startsWithLetter(word, letter) {
				learned++
			}
		}
		result = append(result, model.LetterProgress{
			Letter:       letter,
			TotalWords:   total,
			LearnedWords: learned,
			Progress:     model.RoundPct(learned, total),
		})
	}
	return result
}

func startsWithLetter(word, letter string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	return strings.EqualFold(string(runes[0]), letter)
}
