package wordlist

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed starter.txt
var starterList string

// StarterWords returns the embedded starter corpus.
func StarterWords() []string {
	var words []string
	for _, line := range strings.Split(starterList, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = AddUnique(words, line)
	}
	return words
}

// WriteStarter writes the embedded starter corpus to the given path without
// clobbering an existing list unless force is set.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("word list already exists: %s (use --force to overwrite)", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat word list: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(starterList), 0o644); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}
