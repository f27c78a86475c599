// Package frequency parses the hanzi frequency list CSV that defines the
// character universe and its output order. Pure function: file path in,
// ordered list plus candidate words out.
package frequency

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/hanzifier/internal/app/dataset/unihan"
	"github.com/heartmarshall/hanzifier/internal/domain"
)

const (
	hanziColumn      = "hanzi_sc"
	definitionColumn = "cc_cedict_definitions"
)

// Stats holds parser statistics for logging.
type Stats struct {
	TotalRows       int
	SkippedRows     int
	WithDefinitions int
}

// ParseResult holds the ordered character universe and English candidate
// words extracted from the optional bilingual definition column.
type ParseResult struct {
	Hanzi        []string
	EnglishWords map[string][]string
	Stats        Stats
}

// Parse reads the frequency CSV. The hanzi_sc column is required; rows
// with an empty value are skipped individually. The definition column is
// optional, both as a column and per row.
func Parse(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow variable column count

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return ParseResult{}, fmt.Errorf("empty frequency list")
		}
		return ParseResult{}, fmt.Errorf("read header: %w", err)
	}

	hanziIdx, definitionIdx := -1, -1
	for i, name := range header {
		switch name {
		case hanziColumn:
			hanziIdx = i
		case definitionColumn:
			definitionIdx = i
		}
	}
	if hanziIdx == -1 {
		return ParseResult{}, fmt.Errorf("missing %q column", hanziColumn)
	}

	result := ParseResult{EnglishWords: make(map[string][]string)}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ParseResult{}, fmt.Errorf("read row: %w", err)
		}

		result.Stats.TotalRows++

		if hanziIdx >= len(record) || record[hanziIdx] == "" {
			result.Stats.SkippedRows++
			continue
		}
		hanzi := record[hanziIdx]
		result.Hanzi = append(result.Hanzi, hanzi)

		if definitionIdx == -1 || definitionIdx >= len(record) || record[definitionIdx] == "" {
			continue
		}
		words := unihan.ExtractEnglishWords(record[definitionIdx])
		if len(words) == 0 {
			continue
		}
		result.Stats.WithDefinitions++
		result.EnglishWords[hanzi] = domain.DeduplicateWords(append(result.EnglishWords[hanzi], words...))
	}

	return result, nil
}
