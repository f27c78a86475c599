package domain

import "strings"

// NormalizeWord prepares a candidate word for comparison and caching:
// trims surrounding whitespace and lowercases.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// DeduplicateWords returns a new slice with duplicates removed, preserving
// the order of first occurrence. Returns nil for nil input.
func DeduplicateWords(words []string) []string {
	if words == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(words))
	result := make([]string, 0, len(words))

	for _, w := range words {
		if _, exists := seen[w]; exists {
			continue
		}
		seen[w] = struct{}{}
		result = append(result, w)
	}

	return result
}
