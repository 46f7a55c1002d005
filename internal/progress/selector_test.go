package progress

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/spellsan/spellsan/internal/model"
)

func testSelector() *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(1))}
}

func corpusOf(n int) []string {
	corpus := make([]string, n)
	for i := range corpus {
		corpus[i] = fmt.Sprintf("word%03d", i)
	}
	return corpus
}

func assertNoDuplicates(t *testing.T, words []string) {
	t.Helper()
	seen := map[string]struct{}{}
	for _, w := range words {
		if _, ok := seen[w]; ok {
			t.Fatalf("duplicate word %q in practice set", w)
		}
		seen[w] = struct{}{}
	}
}

func assertSubset(t *testing.T, words, corpus []string) {
	t.Helper()
	for _, w := range words {
		if !model.ContainsWord(corpus, w) {
			t.Fatalf("word %q not in corpus", w)
		}
	}
}

func TestSelectAllNewWords(t *testing.T) {
	corpus := corpusOf(100)
	got := testSelector().SelectPracticeSet(model.DefaultRecord(), corpus, model.ModeRandom, "")
	if len(got) != 30 {
		t.Fatalf("expected 30 words (max(20, 30%% of 100)), got %d", len(got))
	}
	assertNoDuplicates(t, got)
	assertSubset(t, got, corpus)
}

func TestSelectSmallCorpusUsesFloor(t *testing.T) {
	corpus := corpusOf(30)
	got := testSelector().SelectPracticeSet(model.DefaultRecord(), corpus, model.ModeRandom, "")
	if len(got) != 20 {
		t.Fatalf("expected floor of 20 words, got %d", len(got))
	}
	assertNoDuplicates(t, got)
}

func TestSelectAllLearnedReturnsReviewSet(t *testing.T) {
	corpus := []string{"apple", "banana", "cherry", "damson", "elder"}
	record := model.DefaultRecord()
	record.WordsLearned = append([]string{}, corpus...)

	got := testSelector().SelectPracticeSet(record, corpus, model.ModeRandom, "")
	if len(got) != len(corpus) {
		t.Fatalf("expected permutation of %d learned words, got %d", len(corpus), len(got))
	}
	sorted := append([]string{}, got...)
	sort.Strings(sorted)
	want := append([]string{}, corpus...)
	sort.Strings(want)
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("practice set is not a permutation of the corpus: %v", got)
		}
	}
}

func TestSelectPrioritizesDifficultWords(t *testing.T) {
	corpus := corpusOf(100)
	record := model.DefaultRecord()
	for i := 0; i < 10; i++ {
		record.DifficultWords = append(record.DifficultWords, corpus[i])
	}

	got := testSelector().SelectPracticeSet(record, corpus, model.ModeRandom, "")
	difficultIncluded := 0
	for _, w := range got {
		if model.ContainsWord(record.DifficultWords, w) {
			difficultIncluded++
		}
	}
	// 80% of 10 difficult words, ceiling.
	if difficultIncluded != 8 {
		t.Fatalf("expected 8 difficult words in the set, got %d", difficultIncluded)
	}
	assertNoDuplicates(t, got)
}

func TestSelectSingleDifficultWordAlwaysIncluded(t *testing.T) {
	corpus := corpusOf(50)
	record := model.DefaultRecord()
	record.DifficultWords = []string{corpus[7]}

	got := testSelector().SelectPracticeSet(record, corpus, model.ModeRandom, "")
	if !model.ContainsWord(got, corpus[7]) {
		t.Fatalf("expected the lone difficult word to be included")
	}
}

func TestSelectAlphabetFilter(t *testing.T) {
	corpus := []string{"apple", "Anchor", "banana", "avenue", "cherry"}
	got := testSelector().SelectPracticeSet(model.DefaultRecord(), corpus, model.ModeAlphabet, "a")
	if len(got) != 3 {
		t.Fatalf("expected 3 a-words, got %d: %v", len(got), got)
	}
	for _, w := range got {
		if w[0] != 'a' && w[0] != 'A' {
			t.Fatalf("unexpected word %q for letter filter a", w)
		}
	}
}

func TestSelectEmptyFilterReturnsEmpty(t *testing.T) {
	corpus := []string{"apple", "banana"}
	got := testSelector().SelectPracticeSet(model.DefaultRecord(), corpus, model.ModeAlphabet, "z")
	if len(got) != 0 {
		t.Fatalf("expected empty set for starved filter, got %v", got)
	}
}

func TestSelectReinforcementTopUp(t *testing.T) {
	// 2 difficult + 1 new keeps the set under 15, so learned words top it up:
	// min(5, 10% of 60 learned) = 5.
	corpus := corpusOf(63)
	record := model.DefaultRecord()
	record.DifficultWords = []string{corpus[0], corpus[1]}
	for _, w := range corpus[3:] {
		record.WordsLearned = append(record.WordsLearned, w)
	}

	got := testSelector().SelectPracticeSet(record, corpus, model.ModeRandom, "")
	// ceil(0.8*2)=2 difficult + 1 new + 5 learned.
	if len(got) != 8 {
		t.Fatalf("expected 8 words, got %d: %v", len(got), got)
	}
	learnedIncluded := 0
	for _, w := range got {
		if model.ContainsWord(record.WordsLearned, w) {
			learnedIncluded++
		}
	}
	if learnedIncluded != 5 {
		t.Fatalf("expected 5 reinforcement words, got %d", learnedIncluded)
	}
}

func TestSampleIsUnbiased(t *testing.T) {
	// A correct Fisher-Yates shuffle puts each element in the first slot with
	// equal probability. 3000 draws over 3 elements should stay well within
	// +/-20% of uniform.
	s := testSelector()
	words := []string{"a", "b", "c"}
	counts := map[string]int{}
	const draws = 3000
	for i := 0; i < draws; i++ {
		counts[s.sample(words, 1)[0]]++
	}
	for _, w := range words {
		if counts[w] < draws/3*80/100 || counts[w] > draws/3*120/100 {
			t.Fatalf("biased shuffle: counts %v", counts)
		}
	}
}
