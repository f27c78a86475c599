// Package unihan parses Unihan kDefinition dump files into per-hanzi
// English candidate word lists. Pure function: file path in, maps out.
package unihan

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/heartmarshall/hanzifier/internal/domain"
)

// stopwords are function words excluded from candidate extraction.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "be": {}, "by": {},
	"for": {}, "from": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"of": {}, "on": {}, "or": {}, "same": {}, "the": {}, "to": {}, "with": {},
}

var (
	wordRe    = regexp.MustCompile(`[a-z]+`)
	parenRe   = regexp.MustCompile(`\([^)]*\)`)
	bracketRe = regexp.MustCompile(`\[[^\]]*\]`)
)

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines     int
	SkippedLines   int
	DefinitionRows int
}

// ParseResult holds per-hanzi English candidate words in first-seen order.
type ParseResult struct {
	Words map[string][]string
	Stats Stats
}

// Parse reads a Unihan dump: tab-delimited rows of the form
// "U+XXXX\t<hanzi>\t<field>\t<value>". Only kDefinition rows contribute;
// short or foreign rows are skipped individually.
func Parse(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	result := ParseResult{Words: make(map[string][]string)}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.Stats.TotalLines++

		parts := strings.Split(line, "\t")
		if len(parts) < 4 || parts[2] != "kDefinition" {
			result.Stats.SkippedLines++
			continue
		}
		result.Stats.DefinitionRows++

		hanzi := parts[1]
		words := ExtractEnglishWords(parts[3])
		if len(words) == 0 {
			continue
		}
		result.Words[hanzi] = domain.DeduplicateWords(append(result.Words[hanzi], words...))
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	return result, nil
}

// ExtractEnglishWords pulls candidate words out of a definition string:
// lowercase, parenthesized and bracketed spans removed, latin-letter runs
// tokenized, stopwords and single letters dropped, first occurrence kept.
func ExtractEnglishWords(text string) []string {
	normalized := strings.ToLower(text)
	normalized = parenRe.ReplaceAllString(normalized, " ")
	normalized = bracketRe.ReplaceAllString(normalized, " ")

	var words []string
	for _, w := range wordRe.FindAllString(normalized, -1) {
		if len(w) <= 1 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return domain.DeduplicateWords(words)
}
