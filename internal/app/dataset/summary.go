package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/hanzifier/internal/domain"
	"github.com/heartmarshall/hanzifier/internal/morph"
)

const (
	summarySampleEntries  = 5
	summarySampleMeanings = 10
)

// Summarize prints the human-readable run summary: character count, total
// meaning tokens, how many tokens carry a suffix encoding, and a short
// sample of the first entries.
func Summarize(w io.Writer, ds domain.Dataset) {
	totalMeanings := 0
	withSuffix := 0
	for _, entry := range ds {
		totalMeanings += len(entry.Meanings)
		for _, meaning := range entry.Meanings {
			if strings.Contains(meaning, morph.SuffixSeparator) {
				withSuffix++
			}
		}
	}

	fmt.Fprintf(w, "Hanzi count: %d\n", len(ds))
	fmt.Fprintf(w, "Total meanings: %d\n", totalMeanings)
	fmt.Fprintf(w, "Meanings with suffix encoding: %d\n", withSuffix)
	fmt.Fprintln(w, "Sample entries:")

	for i, entry := range ds {
		if i >= summarySampleEntries {
			break
		}
		sample := entry.Meanings
		if len(sample) > summarySampleMeanings {
			sample = sample[:summarySampleMeanings]
		}
		fmt.Fprintf(w, "- %s: %s\n", entry.Hanzi, strings.Join(sample, ", "))
	}
}
