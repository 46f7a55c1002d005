package progress

import (
	"testing"

	"github.com/spellsan/spellsan/internal/model"
)

func TestClassify(t *testing.T) {
	record := model.DefaultRecord()
	record.WordsLearned = []string{"ceiling", "friend"}
	record.DifficultWords = []string{"rhythm"}

	tests := []struct {
		word string
		want model.Category
	}{
		{word: "rhythm", want: model.CategoryDifficult},
		{word: "ceiling", want: model.CategoryLearned},
		{word: "friend", want: model.CategoryLearned},
		{word: "queue", want: model.CategoryNew},
	}
	for _, tt := range tests {
		if got := Classify(record, tt.word); got != tt.want {
			t.Fatalf("Classify(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	record := model.DefaultRecord()
	record.DifficultWords = []string{"weird"}
	for i := 0; i < 3; i++ {
		if got := Classify(record, "weird"); got != model.CategoryDifficult {
			t.Fatalf("call %d: expected difficult, got %q", i, got)
		}
	}
}

func TestAlphabetProgress(t *testing.T) {
	record := model.DefaultRecord()
	record.WordsLearned = []string{"apple", "Avenue", "banana"}
	corpus := []string{"apple", "Avenue", "anchor", "banana", "cherry"}

	letters := AlphabetProgress(record, corpus)
	if len(letters) != 26 {
		t.Fatalf("expected 26 letters, got %d", len(letters))
	}

	a := letters[0]
	if a.Letter != "A" || a.TotalWords != 3 || a.LearnedWords != 2 {
		t.Fatalf("unexpected A progress: %+v", a)
	}
	if a.Progress != 67 {
		t.Fatalf("expected A progress 67%%, got %d", a.Progress)
	}

	b := letters[1]
	if b.TotalWords != 1 || b.LearnedWords != 1 || b.Progress != 100 {
		t.Fatalf("unexpected B progress: %+v", b)
	}

	z := letters[25]
	if z.TotalWords != 0 || z.Progress != 0 {
		t.Fatalf("expected empty Z progress, got %+v", z)
	}
}
