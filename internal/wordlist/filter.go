// Package wordlist provides word validation helpers.
package wordlist

import "unicode"

// IsSpellingWord reports whether a line qualifies as a practice word:
// letters only, with internal hyphens or apostrophes allowed.
func IsSpellingWord(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	if !unicode.IsLetter(runes[0]) || !unicode.IsLetter(runes[len(runes)-1]) {
		return false
	}
	for _, r := range runes {
		if unicode.IsLetter(r) || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}
