// Package bkrs parses BKRS term-bank JSON files into per-hanzi Russian
// candidate word lists. Pure function: directory path in, maps out.
//
// Term banks are the Yomichan format: each term_bank_*.json file holds a
// JSON array of records, each record an array with the headword at index 0
// and the definition list at index 5.
package bkrs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/heartmarshall/hanzifier/internal/domain"
)

// stopwords are function words excluded from candidate extraction.
var stopwords = map[string]struct{}{
	"и": {}, "в": {}, "во": {}, "на": {}, "с": {}, "со": {}, "к": {},
	"ко": {}, "по": {}, "от": {}, "до": {}, "за": {}, "для": {}, "о": {},
	"об": {}, "у": {}, "из": {}, "под": {}, "над": {}, "при": {},
	"это": {}, "этот": {}, "эта": {}, "эти": {}, "как": {}, "или": {},
	"что": {}, "не": {}, "но": {},
}

var wordRe = regexp.MustCompile(`(?i)[а-яё]+`)

// Stats holds parser statistics for logging.
type Stats struct {
	Files          int
	TotalRecords   int
	SkippedRecords int
}

// ParseResult holds per-hanzi Russian candidate words in first-seen order.
type ParseResult struct {
	Words map[string][]string
	Stats Stats
}

// Parse reads every term_bank_*.json file under dir in name order and
// aggregates candidate words per headword. Malformed records (short
// arrays, non-string headwords, non-list definition fields) are skipped
// individually; a file that is not valid JSON fails the run.
func Parse(dir string) (ParseResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "term_bank_*.json"))
	if err != nil {
		return ParseResult{}, fmt.Errorf("glob term banks: %w", err)
	}
	sort.Strings(paths)

	result := ParseResult{Words: make(map[string][]string)}
	result.Stats.Files = len(paths)

	for _, path := range paths {
		if err := parseFile(path, &result); err != nil {
			return ParseResult{}, fmt.Errorf("term bank %s: %w", filepath.Base(path), err)
		}
	}

	return result, nil
}

func parseFile(path string, result *ParseResult) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var records [][]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	for _, record := range records {
		result.Stats.TotalRecords++

		if len(record) < 6 {
			result.Stats.SkippedRecords++
			continue
		}

		var hanzi string
		if err := json.Unmarshal(record[0], &hanzi); err != nil || hanzi == "" {
			result.Stats.SkippedRecords++
			continue
		}

		var definitions []string
		if err := json.Unmarshal(record[5], &definitions); err != nil {
			result.Stats.SkippedRecords++
			continue
		}

		for _, definition := range definitions {
			words := ExtractRussianWords(definition)
			if len(words) == 0 {
				continue
			}
			result.Words[hanzi] = domain.DeduplicateWords(append(result.Words[hanzi], words...))
		}
	}

	return nil
}

// ExtractRussianWords pulls candidate words out of a definition string:
// Cyrillic-letter runs tokenized case-insensitively, lowercased, stopwords
// and single letters dropped, first occurrence kept.
func ExtractRussianWords(text string) []string {
	var words []string
	for _, match := range wordRe.FindAllString(text, -1) {
		w := strings.ToLower(match)
		if len([]rune(w)) <= 1 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return domain.DeduplicateWords(words)
}
