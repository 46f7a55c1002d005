package scramble

import (
	"sort"
	"strings"
	"testing"
)

func sortedLetters(word string) string {
	runes := []rune(strings.ToLower(word))
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

func TestScramblePreservesLetters(t *testing.T) {
	s := New()
	for _, word := range []string{"necessary", "rhythm", "queue", "Wednesday"} {
		got := s.Scramble(word)
		if sortedLetters(got) != sortedLetters(word) {
			t.Fatalf("Scramble(%q) = %q, letters differ", word, got)
		}
	}
}

func TestScrambleDiffersWhenPossible(t *testing.T) {
	s := New()
	for i := 0; i < 20; i++ {
		got := s.Scramble("arrange")
		if strings.EqualFold(got, "arrange") {
			t.Fatalf("expected scrambled order to differ from the original")
		}
	}
}

func TestScrambleDegenerateWords(t *testing.T) {
	s := New()
	if got := s.Scramble("a"); got != "a" {
		t.Fatalf("single letter must pass through, got %q", got)
	}
	if got := s.Scramble(""); got != "" {
		t.Fatalf("empty word must pass through, got %q", got)
	}
	// All identical letters admit no different arrangement.
	if got := s.Scramble("aaa"); got != "aaa" {
		t.Fatalf("expected aaa unchanged, got %q", got)
	}
}
