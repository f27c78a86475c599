// Package dataset builds the hanzi meaning dataset: it selects candidate
// roots per character, expands them across their morphological paradigms,
// aggregates the encoded variants into bounded meaning lists and writes
// the result as one full JSON file plus fixed-size chunk files.
package dataset

import "github.com/heartmarshall/hanzifier/internal/domain"

// DefaultMaxRoots bounds how many candidate roots expand per character.
const DefaultMaxRoots = 3

// SelectRoots picks at most maxRoots candidate roots for one character:
// primary-language candidates first, then secondary, deduplicated by word
// across both lists with first occurrence winning, truncated, and each
// survivor tagged by script detection. No candidates yields an empty
// selection, not an error.
func SelectRoots(primary, secondary []string, maxRoots int) []domain.Root {
	if maxRoots <= 0 {
		maxRoots = DefaultMaxRoots
	}

	combined := make([]string, 0, len(primary)+len(secondary))
	combined = append(combined, primary...)
	combined = append(combined, secondary...)
	combined = domain.DeduplicateWords(combined)

	if len(combined) > maxRoots {
		combined = combined[:maxRoots]
	}

	roots := make([]domain.Root, len(combined))
	for i, word := range combined {
		roots[i] = domain.Root{Word: word, Lang: domain.DetectLanguage(word)}
	}
	return roots
}
