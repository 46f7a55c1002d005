// Package wordlist loads the spelling word corpus.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadWords reads one word per line from the provided file path, skipping
// blanks and anything that is not a plain spelling word.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !IsSpellingWord(line) {
			continue
		}
		words = AddUnique(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// AddUnique appends the word unless it is already present, preserving order.
func AddUnique(words []string, word string) []string {
	for _, w := range words {
		if w == word {
			return words
		}
	}
	return append(words, word)
}
