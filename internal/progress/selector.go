package progress

import (
	"math"
	"math/rand"
	"time"

	"github.com/spellsan/spellsan/internal/model"
)

const (
	difficultShare  = 0.8
	targetShare     = 0.3
	targetFloor     = 20
	reviewThreshold = 15
	reviewCap       = 5
	reviewShare     = 0.1
	fallbackSize    = 20
)

// Selector builds practice word lists biased toward difficult and new words.
type Selector struct {
	rnd *rand.Rand
}

// NewSelector returns a Selector seeded with the current time.
func NewSelector() *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// SelectPracticeSet restricts the corpus to the requested mode/letter and
// assembles a shuffled practice set: most of the difficult words, new words
// up to the target size, and a small reinforcement sample of learned words
// when the set comes up short. A fully mastered filter returns the learned
// words themselves so a session is never empty.
func (s *Selector) SelectPracticeSet(record model.Record, corpus []string, mode model.Mode, letter string) []string {
	filtered := filterCorpus(corpus, mode, letter)

	var difficult, learned, fresh []string
	for _, word := range filtered {
		switch Classify(record, word) {
		case model.CategoryDifficult:
			difficult = append(difficult, word)
		case model.CategoryLearned:
			learned = append(learned, word)
		default:
			fresh = append(fresh, word)
		}
	}

	// Everything mastered: review the learned words instead of returning an
	// empty session.
	if len(difficult) == 0 && len(fresh) == 0 {
		if len(learned) > 0 {
			return s.sample(learned, len(learned))
		}
		return s.sample(filtered, len(filtered))
	}

	var practice []string
	if len(difficult) > 0 {
		count := int(math.Ceil(float64(len(difficult)) * difficultShare))
		if count < 1 {
			count = 1
		}
		practice = append(practice, s.sample(difficult, count)...)
	}

	target := int(math.Floor(float64(len(filtered)) * targetShare))
	if target < targetFloor {
		target = targetFloor
	}
	if remaining := target - len(practice); remaining > 0 && len(fresh) > 0 {
		practice = append(practice, s.sample(fresh, remaining)...)
	}

	if len(practice) < reviewThreshold && len(learned) > 0 {
		review := reviewThreshold - len(practice)
		if tenth := int(math.Floor(float64(len(learned)) * reviewShare)); tenth < review {
			review = tenth
		}
		if review > reviewCap {
			review = reviewCap
		}
		if review > 0 {
			practice = append(practice, s.sample(learned, review)...)
		}
	}

	// Only reachable with inconsistent input, kept as a safety net.
	if len(practice) == 0 {
		return s.sample(filtered, fallbackSize)
	}

	s.rnd.Shuffle(len(practice), func(i, j int) {
		practice[i], practice[j] = practice[j], practice[i]
	})
	return practice
}

// sample returns up to n words drawn without replacement, in random order.
func (s *Selector) sample(words []string, n int) []string {
	out := make([]string, len(words))
	copy(out, words)
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// filterCorpus narrows the corpus for the requested mode. Alphabet mode keeps
// words starting with the letter, case-insensitive.
func filterCorpus(corpus []string, mode model.Mode, letter string) []string {
	if mode != model.ModeAlphabet || letter == "" {
		return corpus
	}
	var out []string
	for _, word := range corpus {
		if startsWithLetter(word, letter) {
			out = append(out, word)
		}
	}
	return out
}
