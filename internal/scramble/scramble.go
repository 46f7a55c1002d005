// Package scramble produces shuffled letter orders for practice prompts.
package scramble

import (
	"math/rand"
	"strings"
	"time"
)

const maxAttempts = 10

// Scrambler shuffles the letters of a word.
type Scrambler struct {
	rnd *rand.Rand
}

// New returns a Scrambler seeded with the current time.
func New() *Scrambler {
	return &Scrambler{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Scramble returns the word's letters in uniformly random order, retrying so
// the result differs from the original whenever the word admits a different
// arrangement.
func (s *Scrambler) Scramble(word string) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}
	lower := strings.ToLower(word)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		shuffled := make([]rune, len(runes))
		copy(shuffled, runes)
		s.rnd.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if out := string(shuffled); !strings.EqualFold(out, lower) {
			return out
		}
	}
	// All letters identical, or we kept drawing the original order.
	return string(runes)
}
